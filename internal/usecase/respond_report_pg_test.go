package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	entactivity "kolekta.io/kolekta/ent/activity"
	entnotification "kolekta.io/kolekta/ent/notification"
	entreportstatus "kolekta.io/kolekta/ent/reportstatus"
	"kolekta.io/kolekta/internal/activity"
	"kolekta.io/kolekta/internal/notification"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/testutil"
)

func TestRespondReport_StatusAndNotification(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "respond_report")
	ctx := context.Background()

	submit := NewSubmitReportUseCase(client)
	respond := NewRespondReportUseCase(
		client,
		notification.NewTriggers(notification.NewInboxSender(client)),
		activity.NewLogger(client),
	)

	report, err := submit.Execute(ctx, SubmitReportInput{
		UserID:      "resident-1",
		Title:       "Missed pickup",
		Description: "Truck skipped our street this morning",
	})
	require.NoError(t, err)
	require.Equal(t, "Pending", report.Status)

	// First response: in progress.
	updated, err := respond.Execute(ctx, RespondReportInput{
		ReportID: report.ID,
		Response: "Crew dispatched",
		Actor:    "official-1",
	})
	require.NoError(t, err)
	require.Equal(t, "In Progress", updated.Status)
	require.Equal(t, "Crew dispatched", updated.OfficialResponse)

	// Second response resolves it. The status row is replaced, not stacked.
	updated, err = respond.Execute(ctx, RespondReportInput{
		ReportID: report.ID,
		Response: "Collected this morning",
		Resolve:  true,
		Actor:    "official-1",
	})
	require.NoError(t, err)
	require.Equal(t, "Resolved", updated.Status)

	statusRows, err := client.ReportStatus.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, statusRows, 1)
	require.Equal(t, entreportstatus.StatusResolved, statusRows[0].Status)
	require.Equal(t, "Collected this morning", statusRows[0].OfficialResponse)

	// The resident's inbox holds one row carrying the latest wording.
	n, err := client.Notification.Query().
		Where(entnotification.UserIDEQ("resident-1")).
		Only(ctx)
	require.NoError(t, err)
	require.Equal(t,
		notification.ResponseMessage("Missed pickup", "Collected this morning", true),
		n.Message)
	require.Equal(t, "Resolved", n.Status)
	require.False(t, n.Read)

	// Both responses left activity entries.
	actions := []string{}
	rows, err := client.Activity.Query().
		Where(entactivity.TypeEQ(entactivity.TypeReportUpdate)).
		All(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		actions = append(actions, row.Action)
	}
	require.ElementsMatch(t, []string{"Responded to report", "Marked report as resolved"}, actions)
}

func TestRespondReport_Errors(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "respond_errors")
	respond := NewRespondReportUseCase(
		client,
		notification.NewTriggers(notification.NewInboxSender(client)),
		activity.NewLogger(client),
	)
	ctx := context.Background()

	var appErr *apperrors.AppError

	_, err := respond.Execute(ctx, RespondReportInput{ReportID: "missing", Response: "hi"})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeReportNotFound, appErr.Code)

	_, err = respond.Execute(ctx, RespondReportInput{ReportID: "r-1", Response: "   "})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestSubmitReport_Validation(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "submit_report_validation")
	submit := NewSubmitReportUseCase(client)

	_, err := submit.Execute(context.Background(), SubmitReportInput{Title: "no user"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	require.NotEmpty(t, appErr.FieldErrors)
}
