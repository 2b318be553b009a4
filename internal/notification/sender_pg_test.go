package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	entnotification "kolekta.io/kolekta/ent/notification"
	"kolekta.io/kolekta/internal/testutil"
)

func TestInboxSender_UpsertKeepsOneRowPerReportAndUser(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notification_upsert")
	sender := NewInboxSender(client)
	ctx := context.Background()

	first := Params{
		RecipientID: "user-1",
		ReportID:    "rep-1",
		Message:     ResponseMessage("Missed pickup", "Crew dispatched", false),
		Status:      "In Progress",
	}
	require.NoError(t, sender.Send(ctx, first))

	// Resident reads the notification.
	n, err := client.Notification.Query().
		Where(
			entnotification.ReportIDEQ("rep-1"),
			entnotification.UserIDEQ("user-1"),
		).
		Only(ctx)
	require.NoError(t, err)
	_, err = client.Notification.UpdateOneID(n.ID).SetRead(true).Save(ctx)
	require.NoError(t, err)

	// Second response to the same report replaces the row in place,
	// updating message and status snapshot and flipping it back to unread.
	second := Params{
		RecipientID: "user-1",
		ReportID:    "rep-1",
		Message:     ResponseMessage("Missed pickup", "Collected this morning", true),
		Status:      "Resolved",
	}
	require.NoError(t, sender.Send(ctx, second))

	rows, err := client.Notification.Query().
		Where(entnotification.UserIDEQ("user-1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1, "upsert must never stack duplicate rows")
	require.Equal(t, second.Message, rows[0].Message)
	require.Equal(t, "Resolved", rows[0].Status)
	require.False(t, rows[0].Read)
	require.Nil(t, rows[0].ReadAt)

	// A different resident watching the same report gets their own row.
	other := Params{RecipientID: "user-2", ReportID: "rep-1", Message: second.Message, Status: second.Status}
	require.NoError(t, sender.Send(ctx, other))

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestInboxSender_RejectsInvalidParams(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notification_invalid")
	sender := NewInboxSender(client)

	err := sender.Send(context.Background(), Params{RecipientID: "user-1"})
	require.Error(t, err)

	count, err := client.Notification.Query().Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}
