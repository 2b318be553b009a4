package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"kolekta.io/kolekta/internal/testutil"
)

func TestNotificationReconcileArgsKind(t *testing.T) {
	t.Parallel()

	if got := (NotificationReconcileArgs{}).Kind(); got != "notification_reconcile" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_reconcile")
	}
}

func TestNotificationReconcileArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (NotificationReconcileArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
	if !opts.UniqueOpts.ByQueue || !opts.UniqueOpts.ByArgs {
		t.Fatalf("UniqueOpts = %+v, want ByQueue and ByArgs", opts.UniqueOpts)
	}
}

func TestNotificationReconcileWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *NotificationReconcileWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil ent client", func(t *testing.T) {
		w := &NotificationReconcileWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}

func TestNotificationReconcileWorkerWork_KeepsUniqueRows(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notification_reconcile")
	ctx := context.Background()

	// Distinct (report, user) pairs must all survive a reconcile pass.
	for i, pair := range []struct{ report, user string }{
		{"rep-1", "user-1"},
		{"rep-1", "user-2"},
		{"rep-2", "user-1"},
	} {
		err := client.Notification.Create().
			SetID("n-" + string(rune('a'+i))).
			SetReportID(pair.report).
			SetUserID(pair.user).
			SetMessage("update").
			SetStatus("In Progress").
			SetRead(false).
			Exec(ctx)
		if err != nil {
			t.Fatalf("seed notification: %v", err)
		}
	}

	w := NewNotificationReconcileWorker(client)
	if err := w.Work(ctx, nil); err != nil {
		t.Fatalf("Work() error = %v", err)
	}

	count, err := client.Notification.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if count != 3 {
		t.Fatalf("notifications = %d, want 3", count)
	}
}
