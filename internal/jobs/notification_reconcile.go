package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	entnotification "kolekta.io/kolekta/ent/notification"
	"kolekta.io/kolekta/internal/pkg/logger"
)

// NotificationReconcileArgs is a periodic maintenance job that collapses
// duplicate inbox rows. The (report_id, user_id) unique constraint stops
// new duplicates; this pass cleans up rows that predate it.
type NotificationReconcileArgs struct{}

// Kind returns the job kind identifier for periodic notification reconciliation.
func (NotificationReconcileArgs) Kind() string { return "notification_reconcile" }

// InsertOpts ensures at most one reconcile job is enqueued within the same day.
func (NotificationReconcileArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// NotificationReconcileWorker keeps the newest row per (report, user)
// pair and deletes the rest.
type NotificationReconcileWorker struct {
	river.WorkerDefaults[NotificationReconcileArgs]
	entClient *ent.Client
}

// NewNotificationReconcileWorker creates a reconcile worker.
func NewNotificationReconcileWorker(entClient *ent.Client) *NotificationReconcileWorker {
	return &NotificationReconcileWorker{entClient: entClient}
}

// Work removes duplicate notification rows.
func (w *NotificationReconcileWorker) Work(ctx context.Context, _ *river.Job[NotificationReconcileArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("notification reconcile worker is not initialized")
	}

	// Newest first so the first row seen per pair is the keeper.
	rows, err := w.entClient.Notification.Query().
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query notifications for reconcile: %w", err)
	}

	type pair struct{ reportID, userID string }
	seen := make(map[pair]struct{}, len(rows))
	var duplicateIDs []string
	for _, row := range rows {
		key := pair{reportID: row.ReportID, userID: row.UserID}
		if _, ok := seen[key]; ok {
			duplicateIDs = append(duplicateIDs, row.ID)
			continue
		}
		seen[key] = struct{}{}
	}

	deleted := 0
	if len(duplicateIDs) > 0 {
		deleted, err = w.entClient.Notification.Delete().
			Where(entnotification.IDIn(duplicateIDs...)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete %d duplicate notifications: %w", len(duplicateIDs), err)
		}
	}

	logger.Info("notification reconcile completed",
		zap.Int("scanned", len(rows)),
		zap.Int("deleted_duplicates", deleted),
	)
	return nil
}
