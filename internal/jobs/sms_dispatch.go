// Package jobs defines River Queue job types for async processing.
//
// Jobs carry only the row ID; workers load current state from the
// database so retries always act on fresh data.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	entsmsmessage "kolekta.io/kolekta/ent/smsmessage"
	"kolekta.io/kolekta/internal/pkg/logger"
	"kolekta.io/kolekta/internal/sms"
)

// QueueSMS is a dedicated queue so a slow SMS provider never starves
// default-queue jobs.
const QueueSMS = "sms"

// SMSDispatchArgs carries the queued SMS row ID.
type SMSDispatchArgs struct {
	MessageID string `json:"message_id"`
}

// Kind returns the job kind identifier for SMS dispatch.
func (SMSDispatchArgs) Kind() string { return "sms_dispatch" }

// InsertOpts returns default insert options for SMS dispatch jobs.
func (SMSDispatchArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueSMS,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// SMSDispatchWorker delivers queued SMS rows through the gateway and
// records the real outcome on the row.
type SMSDispatchWorker struct {
	river.WorkerDefaults[SMSDispatchArgs]
	entClient *ent.Client
	gateway   sms.Gateway
}

// NewSMSDispatchWorker creates a new SMSDispatchWorker.
func NewSMSDispatchWorker(entClient *ent.Client, gateway sms.Gateway) *SMSDispatchWorker {
	return &SMSDispatchWorker{entClient: entClient, gateway: gateway}
}

// Work sends the message. A row already marked sent is skipped so
// retries never double-send.
func (w *SMSDispatchWorker) Work(ctx context.Context, job *river.Job[SMSDispatchArgs]) error {
	if w == nil || w.entClient == nil || w.gateway == nil {
		return fmt.Errorf("sms dispatch worker is not initialized")
	}

	msg, err := w.entClient.SMSMessage.Get(ctx, job.Args.MessageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return river.JobCancel(fmt.Errorf("sms message %s not found", job.Args.MessageID))
		}
		return fmt.Errorf("fetch sms message %s: %w", job.Args.MessageID, err)
	}
	if msg.Status == entsmsmessage.StatusSent {
		logger.Info("sms already sent, skipping duplicate dispatch",
			zap.String("message_id", msg.ID),
		)
		return nil
	}

	if sendErr := w.gateway.Send(ctx, msg.Recipients, msg.Body); sendErr != nil {
		// Persist the failure before handing the job back for retry.
		if _, saveErr := w.entClient.SMSMessage.UpdateOneID(msg.ID).
			SetStatus(entsmsmessage.StatusFailed).
			SetLastError(sendErr.Error()).
			Save(ctx); saveErr != nil {
			logger.Error("failed to persist sms failure",
				zap.String("message_id", msg.ID),
				zap.Error(saveErr),
			)
		}
		return fmt.Errorf("send sms %s: %w", msg.ID, sendErr)
	}

	if _, err := w.entClient.SMSMessage.UpdateOneID(msg.ID).
		SetStatus(entsmsmessage.StatusSent).
		SetSentAt(time.Now()).
		ClearLastError().
		Save(ctx); err != nil {
		// The provider accepted the message; returning an error here
		// would re-send on retry. Log and let the row stay stale.
		logger.Error("sms sent but status update failed",
			zap.String("message_id", msg.ID),
			zap.Error(err),
		)
		return nil
	}

	logger.Info("sms dispatched",
		zap.String("message_id", msg.ID),
		zap.String("recipient_group", msg.RecipientGroup),
		zap.Int("recipients", len(msg.Recipients)),
	)
	return nil
}
