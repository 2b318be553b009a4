package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"kolekta.io/kolekta/internal/testutil"
)

func TestInbox_ReadLifecycle(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "inbox_lifecycle")
	sender := NewInboxSender(client)
	inbox := NewInbox(client)
	ctx := context.Background()

	for _, reportID := range []string{"rep-1", "rep-2", "rep-3"} {
		require.NoError(t, sender.Send(ctx, Params{
			RecipientID: "user-1",
			ReportID:    reportID,
			Message:     "update on " + reportID,
			Status:      "In Progress",
		}))
	}
	require.NoError(t, sender.Send(ctx, Params{
		RecipientID: "user-2",
		ReportID:    "rep-1",
		Message:     "other user",
		Status:      "In Progress",
	}))

	rows, err := inbox.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	unread, err := inbox.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 3, unread)

	require.NoError(t, inbox.MarkRead(ctx, "user-1", rows[0].ID))
	unread, err = inbox.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 2, unread)

	// A user cannot mark someone else's notification.
	require.NoError(t, inbox.MarkRead(ctx, "user-2", rows[1].ID))
	unread, err = inbox.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 2, unread)

	marked, err := inbox.MarkAllRead(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 2, marked)

	// Second pass touches nothing.
	marked, err = inbox.MarkAllRead(ctx, "user-1")
	require.NoError(t, err)
	require.Zero(t, marked)

	cleared, err := inbox.ClearAll(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 3, cleared)

	// The other user's inbox is untouched.
	otherUnread, err := inbox.UnreadCount(ctx, "user-2")
	require.NoError(t, err)
	require.Equal(t, 1, otherUnread)
}
