package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	entreport "kolekta.io/kolekta/ent/report"
	entreportstatus "kolekta.io/kolekta/ent/reportstatus"
	"kolekta.io/kolekta/internal/activity"
	"kolekta.io/kolekta/internal/feed"
	"kolekta.io/kolekta/internal/notification"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/pkg/logger"
)

// RespondReportInput represents an official's response to a report.
type RespondReportInput struct {
	ReportID string
	Response string
	Resolve  bool
	Actor    string
}

// RespondReportUseCase records an official response on a report.
//
// The authoritative status row and the denormalized report columns are
// written in one transaction (the primary effect). The resident's inbox
// notification and the activity entry are secondary: their failure is
// logged and the response stands.
type RespondReportUseCase struct {
	entClient   *ent.Client
	triggers    *notification.Triggers
	activityLog *activity.Logger
	hub         *feed.Hub
}

// NewRespondReportUseCase creates a new RespondReportUseCase.
func NewRespondReportUseCase(entClient *ent.Client, triggers *notification.Triggers, activityLog *activity.Logger) *RespondReportUseCase {
	return &RespondReportUseCase{entClient: entClient, triggers: triggers, activityLog: activityLog}
}

// WithFeed sets the change feed hub (optional dependency).
func (uc *RespondReportUseCase) WithFeed(hub *feed.Hub) *RespondReportUseCase {
	uc.hub = hub
	return uc
}

// Execute applies the response.
func (uc *RespondReportUseCase) Execute(ctx context.Context, input RespondReportInput) (*ent.Report, error) {
	if strings.TrimSpace(input.Response) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "response must not be empty")
	}

	report, err := uc.entClient.Report.Query().
		Where(entreport.IDEQ(input.ReportID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrReportNotFoundf(input.ReportID)
		}
		return nil, fmt.Errorf("load report %s: %w", input.ReportID, err)
	}

	newStatus := entreportstatus.StatusInProgress
	if input.Resolve {
		newStatus = entreportstatus.StatusResolved
	}

	// Primary effect: status upsert + denormalized report sync, atomic.
	var updated *ent.Report
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		err := tx.ReportStatus.Create().
			SetID(uuid.NewString()).
			SetReportID(report.ID).
			SetStatus(newStatus).
			SetOfficialResponse(input.Response).
			OnConflictColumns(entreportstatus.FieldReportID).
			Update(func(u *ent.ReportStatusUpsert) {
				u.SetStatus(newStatus)
				u.SetOfficialResponse(input.Response)
			}).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("upsert report status: %w", err)
		}

		updated, err = tx.Report.UpdateOneID(report.ID).
			SetStatus(string(newStatus)).
			SetOfficialResponse(input.Response).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("sync report row: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, apperrors.Wrap(txErr, apperrors.CodeReportRespondFail,
			"failed to record report response", 500)
	}

	// Secondary effects: inbox notification and activity entry.
	if input.Resolve {
		uc.triggers.OnReportResolved(ctx, report.ID, report.UserID, report.Title, input.Response)
	} else {
		uc.triggers.OnReportResponded(ctx, report.ID, report.UserID, report.Title, input.Response)
	}

	if err := uc.activityLog.Append(ctx, activity.ReportResponded(report.ID, input.Resolve, input.Actor)); err != nil {
		logger.Warn("report response recorded but activity entry failed",
			zap.String("report_id", report.ID),
			zap.Error(err),
		)
	}

	if uc.hub != nil {
		uc.hub.Publish(ctx, feed.NewEvent(generateID(), feed.TableReportStatus, feed.OpUpdate, report.ID, nil))
		uc.hub.Publish(ctx, feed.NewEvent(generateID(), feed.TableReports, feed.OpUpdate, updated.ID, updated))
	}

	logger.Info("Report response recorded",
		zap.String("report_id", report.ID),
		zap.String("status", string(newStatus)),
		zap.String("actor", input.Actor),
	)

	return updated, nil
}
