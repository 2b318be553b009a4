package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kolekta.io/kolekta/internal/pkg/logger"
)

// ResponseMessage builds the inbox text for an official response.
// The wording must stay stable: residents' apps match on it.
func ResponseMessage(title, response string, resolved bool) string {
	if resolved {
		return fmt.Sprintf("Your report titled %q has been marked as resolved: %s", title, response)
	}
	return fmt.Sprintf("Official responded to your report titled %q: %s", title, response)
}

// Triggers encapsulates notification trigger logic for report lifecycle
// events. Notification failure never aborts the operation that caused
// it; it is logged and the primary write stands.
type Triggers struct {
	sender Sender
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender) *Triggers {
	return &Triggers{sender: sender}
}

// Status snapshots stored on inbox rows, mirroring the report status enum.
const (
	statusInProgress = "In Progress"
	statusResolved   = "Resolved"
)

// OnReportResponded fires when an official responds to a report.
// Notifies the report owner; the inbox row for this report is replaced.
func (t *Triggers) OnReportResponded(ctx context.Context, reportID, ownerID, title, response string) {
	params := Params{
		RecipientID: ownerID,
		ReportID:    reportID,
		Message:     ResponseMessage(title, response, false),
		Status:      statusInProgress,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		// Notification write must not be dropped silently; failures
		// must be observable.
		logger.Error("failed to send report response notification",
			zap.String("report_id", reportID),
			zap.String("owner", ownerID),
			zap.Error(err),
		)
	}
}

// OnReportResolved fires when an official marks a report resolved.
func (t *Triggers) OnReportResolved(ctx context.Context, reportID, ownerID, title, response string) {
	params := Params{
		RecipientID: ownerID,
		ReportID:    reportID,
		Message:     ResponseMessage(title, response, true),
		Status:      statusResolved,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send report resolved notification",
			zap.String("report_id", reportID),
			zap.String("owner", ownerID),
			zap.Error(err),
		)
	}
}
