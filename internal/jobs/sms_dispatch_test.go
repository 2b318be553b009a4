package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riverqueue/river"

	entsmsmessage "kolekta.io/kolekta/ent/smsmessage"
	"kolekta.io/kolekta/internal/testutil"
)

type stubGateway struct {
	err   error
	calls int
}

func (g *stubGateway) Send(_ context.Context, _ []string, _ string) error {
	g.calls++
	return g.err
}

func TestSMSDispatchArgsKind(t *testing.T) {
	t.Parallel()

	if got := (SMSDispatchArgs{}).Kind(); got != "sms_dispatch" {
		t.Fatalf("Kind() = %q, want %q", got, "sms_dispatch")
	}
}

func TestSMSDispatchArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (SMSDispatchArgs{}).InsertOpts()
	if opts.Queue != "sms" {
		t.Fatalf("Queue = %q, want %q", opts.Queue, "sms")
	}
	if opts.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts = %d, want 3", opts.MaxAttempts)
	}
	if !opts.UniqueOpts.ByArgs || !opts.UniqueOpts.ByQueue {
		t.Fatalf("UniqueOpts = %+v, want ByArgs and ByQueue", opts.UniqueOpts)
	}
}

func TestSMSDispatchWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	var w *SMSDispatchWorker
	err := w.Work(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
	}
}

func TestSMSDispatchWorkerWork_Outcomes(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "sms_dispatch")
	ctx := context.Background()

	seed := func(t *testing.T, id string) {
		t.Helper()
		err := client.SMSMessage.Create().
			SetID(id).
			SetRecipientGroup("all").
			SetRecipients([]string{"+639170000001"}).
			SetMessageType(entsmsmessage.MessageTypeCustom).
			SetBody("test message").
			Exec(ctx)
		if err != nil {
			t.Fatalf("seed sms message: %v", err)
		}
	}

	t.Run("success marks sent", func(t *testing.T) {
		seed(t, "sms-ok")
		gw := &stubGateway{}
		w := NewSMSDispatchWorker(client, gw)

		err := w.Work(ctx, &river.Job[SMSDispatchArgs]{Args: SMSDispatchArgs{MessageID: "sms-ok"}})
		if err != nil {
			t.Fatalf("Work() error = %v", err)
		}

		row, err := client.SMSMessage.Get(ctx, "sms-ok")
		if err != nil {
			t.Fatalf("reload row: %v", err)
		}
		if row.Status != entsmsmessage.StatusSent {
			t.Fatalf("status = %s, want sent", row.Status)
		}
		if row.SentAt == nil {
			t.Fatal("sent_at not set")
		}

		// Retried job must not re-send a sent row.
		if err := w.Work(ctx, &river.Job[SMSDispatchArgs]{Args: SMSDispatchArgs{MessageID: "sms-ok"}}); err != nil {
			t.Fatalf("Work() retry error = %v", err)
		}
		if gw.calls != 1 {
			t.Fatalf("gateway calls = %d, want 1", gw.calls)
		}
	})

	t.Run("failure marks failed and returns error", func(t *testing.T) {
		seed(t, "sms-fail")
		w := NewSMSDispatchWorker(client, &stubGateway{err: errors.New("provider down")})

		err := w.Work(ctx, &river.Job[SMSDispatchArgs]{Args: SMSDispatchArgs{MessageID: "sms-fail"}})
		if err == nil {
			t.Fatal("Work() error = nil, want send failure")
		}

		row, err := client.SMSMessage.Get(ctx, "sms-fail")
		if err != nil {
			t.Fatalf("reload row: %v", err)
		}
		if row.Status != entsmsmessage.StatusFailed {
			t.Fatalf("status = %s, want failed", row.Status)
		}
		if !strings.Contains(row.LastError, "provider down") {
			t.Fatalf("last_error = %q, want provider error", row.LastError)
		}
	})

	t.Run("missing row cancels the job", func(t *testing.T) {
		w := NewSMSDispatchWorker(client, &stubGateway{})
		err := w.Work(ctx, &river.Job[SMSDispatchArgs]{Args: SMSDispatchArgs{MessageID: "sms-missing"}})
		if err == nil {
			t.Fatal("Work() error = nil, want cancel")
		}
	})
}
