package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"kolekta.io/kolekta/internal/activity"
	"kolekta.io/kolekta/internal/notification"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/testutil"
)

func TestSubmitFeedback_ResolvedReportsOnly(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "feedback_resolved_only")
	ctx := context.Background()

	submit := NewSubmitReportUseCase(client)
	respond := NewRespondReportUseCase(
		client,
		notification.NewTriggers(notification.NewInboxSender(client)),
		activity.NewLogger(client),
	)
	feedback := NewSubmitFeedbackUseCase(client)

	report, err := submit.Execute(ctx, SubmitReportInput{
		UserID:      "resident-1",
		Title:       "Overflowing bin",
		Description: "Bin at the plaza has not been emptied",
	})
	require.NoError(t, err)

	// Pending report rejects feedback.
	_, err = feedback.Execute(ctx, SubmitFeedbackInput{
		ReportID:   report.ID,
		ResidentID: "resident-1",
		Rating:     4,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeFeedbackNotResolved, appErr.Code)

	_, err = respond.Execute(ctx, RespondReportInput{
		ReportID: report.ID,
		Response: "Emptied and washed",
		Resolve:  true,
		Actor:    "official-1",
	})
	require.NoError(t, err)

	row, err := feedback.Execute(ctx, SubmitFeedbackInput{
		ReportID:   report.ID,
		ResidentID: "resident-1",
		Rating:     4,
		Comment:    "quick turnaround",
	})
	require.NoError(t, err)
	require.Equal(t, 4, row.Rating)

	// Submitting again replaces the earlier rating instead of stacking.
	row, err = feedback.Execute(ctx, SubmitFeedbackInput{
		ReportID:   report.ID,
		ResidentID: "resident-1",
		Rating:     5,
	})
	require.NoError(t, err)
	require.Equal(t, 5, row.Rating)

	count, err := client.Feedback.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// A different resident rates independently.
	_, err = feedback.Execute(ctx, SubmitFeedbackInput{
		ReportID:   report.ID,
		ResidentID: "resident-2",
		Rating:     3,
	})
	require.NoError(t, err)

	count, err = client.Feedback.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestSubmitFeedback_Validation(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "feedback_validation")
	feedback := NewSubmitFeedbackUseCase(client)
	ctx := context.Background()

	tests := []struct {
		name  string
		input SubmitFeedbackInput
	}{
		{"missing report", SubmitFeedbackInput{ResidentID: "r-1", Rating: 3}},
		{"missing resident", SubmitFeedbackInput{ReportID: "rep-1", Rating: 3}},
		{"rating too low", SubmitFeedbackInput{ReportID: "rep-1", ResidentID: "r-1", Rating: 0}},
		{"rating too high", SubmitFeedbackInput{ReportID: "rep-1", ResidentID: "r-1", Rating: 6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := feedback.Execute(ctx, tc.input)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
		})
	}

	_, err := feedback.Execute(ctx, SubmitFeedbackInput{
		ReportID:   "missing",
		ResidentID: "r-1",
		Rating:     3,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeReportNotFound, appErr.Code)
}
