package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"kolekta.io/kolekta/ent"
	entactivity "kolekta.io/kolekta/ent/activity"
	entschedule "kolekta.io/kolekta/ent/schedule"
	"kolekta.io/kolekta/internal/activity"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/service"
	"kolekta.io/kolekta/internal/testutil"
)

func seedSchedule(t *testing.T, client *ent.Client, purok string) *ent.Schedule {
	t.Helper()
	row, err := client.Schedule.Create().
		SetID(generateID()).
		SetPurok(purok).
		SetPlan(entschedule.PlanA).
		SetDay("Monday").
		SetDate("2026-09-07").
		SetStartTime("08:00").
		SetEndTime("10:00").
		SetWasteType(entschedule.WasteTypeGeneral).
		SetStatus(entschedule.StatusNotStarted).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return row
}

func TestTransitionSchedule_WritesActivityPerStatus(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "transition_activity")
	uc := NewTransitionScheduleUseCase(client, activity.NewLogger(client))
	ctx := context.Background()

	row := seedSchedule(t, client, "1")

	tests := []struct {
		status     string
		wantType   entactivity.Type
		wantAction string
	}{
		{"ongoing", entactivity.TypeUpdate, "Started collection for 1"},
		{"completed", entactivity.TypeComplete, "Marked 1 collection as completed"},
		{"not-started", entactivity.TypeReset, "Reset 1 collection to not started"},
	}

	for _, tc := range tests {
		updated, err := uc.Execute(ctx, TransitionScheduleInput{
			ScheduleID: row.ID,
			Status:     tc.status,
			Actor:      "collector-1",
		})
		require.NoError(t, err)
		require.Equal(t, tc.status, string(updated.Status))

		last, err := client.Activity.Query().
			Order(ent.Desc(entactivity.FieldCreatedAt)).
			First(ctx)
		require.NoError(t, err)
		require.Equal(t, tc.wantType, last.Type)
		require.Equal(t, tc.wantAction, last.Action)
		require.Equal(t, row.ID, last.ScheduleID)
		require.Equal(t, "collector-1", last.Actor)
	}

	count, err := client.Activity.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(tests), count)
}

func TestTransitionSchedule_SameStatusIsNoOp(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "transition_noop")
	uc := NewTransitionScheduleUseCase(client, activity.NewLogger(client))
	ctx := context.Background()

	row := seedSchedule(t, client, "2")

	updated, err := uc.Execute(ctx, TransitionScheduleInput{
		ScheduleID: row.ID,
		Status:     "not-started",
		Actor:      "collector-1",
	})
	require.NoError(t, err)
	require.Equal(t, entschedule.StatusNotStarted, updated.Status)

	count, err := client.Activity.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count, "setting the current status must not write an activity entry")
}

func TestTransitionSchedule_Errors(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "transition_errors")
	uc := NewTransitionScheduleUseCase(client, activity.NewLogger(client))
	ctx := context.Background()

	_, err := uc.Execute(ctx, TransitionScheduleInput{ScheduleID: "missing", Status: "ongoing"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeScheduleNotFound, appErr.Code)

	row := seedSchedule(t, client, "3")
	_, err = uc.Execute(ctx, TransitionScheduleInput{ScheduleID: row.ID, Status: "finished"})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestCreateSchedule_WritesActivity(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "create_schedule")
	uc := NewCreateScheduleUseCase(client, activity.NewLogger(client))
	ctx := context.Background()

	row, err := uc.Execute(ctx, service.CreateScheduleInput{
		Purok:     "5",
		Plan:      "B",
		Date:      "2026-09-08",
		StartTime: "13:00",
		EndTime:   "15:00",
		WasteType: "recyclable",
	}, "official-1")
	require.NoError(t, err)
	require.Equal(t, entschedule.StatusNotStarted, row.Status)
	require.Equal(t, "Tuesday", row.Day, "weekday label comes from the date")
	require.Equal(t, entschedule.WasteTypeRecyclable, row.WasteType, "waste type is stored canonicalized")

	last, err := client.Activity.Query().Only(ctx)
	require.NoError(t, err)
	require.Equal(t, entactivity.TypeCreate, last.Type)
	require.Equal(t, "Added new schedule for Purok 5 on 2026-09-08", last.Action)
	require.Equal(t, row.ID, last.ScheduleID)
}
