package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"kolekta.io/kolekta/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

type captureSender struct {
	sent []Params
	err  error
}

func (c *captureSender) Send(_ context.Context, p Params) error {
	c.sent = append(c.sent, p)
	return c.err
}

func TestResponseMessage(t *testing.T) {
	t.Parallel()

	got := ResponseMessage("Missed pickup", "Crew dispatched", false)
	require.Equal(t, `Official responded to your report titled "Missed pickup": Crew dispatched`, got)

	got = ResponseMessage("Missed pickup", "Collected this morning", true)
	require.Equal(t, `Your report titled "Missed pickup" has been marked as resolved: Collected this morning`, got)
}

func TestTriggers_OnReportResponded(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	triggers := NewTriggers(sender)

	triggers.OnReportResponded(context.Background(), "rep-1", "user-1", "Overflowing bin", "On it")

	require.Len(t, sender.sent, 1)
	p := sender.sent[0]
	require.Equal(t, "user-1", p.RecipientID)
	require.Equal(t, "rep-1", p.ReportID)
	require.Equal(t, `Official responded to your report titled "Overflowing bin": On it`, p.Message)
	require.Equal(t, "In Progress", p.Status)
}

func TestTriggers_OnReportResolved(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	triggers := NewTriggers(sender)

	triggers.OnReportResolved(context.Background(), "rep-2", "user-2", "Overflowing bin", "Cleared")

	require.Len(t, sender.sent, 1)
	require.Equal(t, `Your report titled "Overflowing bin" has been marked as resolved: Cleared`, sender.sent[0].Message)
	require.Equal(t, "Resolved", sender.sent[0].Status)
}

func TestTriggers_SenderFailureDoesNotPanic(t *testing.T) {
	t.Parallel()

	sender := &captureSender{err: context.DeadlineExceeded}
	triggers := NewTriggers(sender)

	// Failure is logged, never propagated.
	triggers.OnReportResponded(context.Background(), "rep-3", "user-3", "t", "r")
	require.Len(t, sender.sent, 1)
}

func TestValidateParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid", Params{RecipientID: "u", ReportID: "r", Message: "m", Status: "Resolved"}, false},
		{"missing recipient", Params{ReportID: "r", Message: "m", Status: "Resolved"}, true},
		{"missing report", Params{RecipientID: "u", Message: "m", Status: "Resolved"}, true},
		{"missing message", Params{RecipientID: "u", ReportID: "r", Status: "Resolved"}, true},
		{"missing status", Params{RecipientID: "u", ReportID: "r", Message: "m"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateParams(tt.params)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
