package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	entschedule "kolekta.io/kolekta/ent/schedule"
	"kolekta.io/kolekta/internal/activity"
	"kolekta.io/kolekta/internal/feed"
	"kolekta.io/kolekta/internal/pkg/logger"
	"kolekta.io/kolekta/internal/service"
)

// CreateScheduleUseCase adds a collection schedule and announces it on
// the activity feed.
type CreateScheduleUseCase struct {
	entClient   *ent.Client
	activityLog *activity.Logger
	hub         *feed.Hub
}

// NewCreateScheduleUseCase creates a new CreateScheduleUseCase.
func NewCreateScheduleUseCase(entClient *ent.Client, activityLog *activity.Logger) *CreateScheduleUseCase {
	return &CreateScheduleUseCase{entClient: entClient, activityLog: activityLog}
}

// WithFeed sets the change feed hub (optional dependency).
func (uc *CreateScheduleUseCase) WithFeed(hub *feed.Hub) *CreateScheduleUseCase {
	uc.hub = hub
	return uc
}

// Execute validates and persists a new schedule.
// The schedule insert is the primary effect; the activity entry is
// best-effort and never fails the request.
func (uc *CreateScheduleUseCase) Execute(ctx context.Context, input service.CreateScheduleInput, actor string) (*ent.Schedule, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	wasteType, err := service.ParseWasteType(input.WasteType)
	if err != nil {
		return nil, err
	}

	create := uc.entClient.Schedule.Create().
		SetID(generateID()).
		SetPurok(input.Purok).
		SetPlan(entschedule.Plan(input.Plan)).
		SetDay(service.WeekdayFor(input.Date)).
		SetDate(input.Date).
		SetStartTime(input.StartTime).
		SetEndTime(input.EndTime).
		SetWasteType(wasteType).
		SetStatus(entschedule.StatusNotStarted)
	if len(input.RoutePoints) > 0 {
		create.SetRoutePoints(input.RoutePoints)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	if err := uc.activityLog.Append(ctx, activity.ScheduleCreated(row.ID, row.Purok, row.Date, actor)); err != nil {
		logger.Warn("schedule created but activity entry failed",
			zap.String("schedule_id", row.ID),
			zap.Error(err),
		)
	}

	if uc.hub != nil {
		uc.hub.Publish(ctx, feed.NewEvent(generateID(), feed.TableSchedules, feed.OpInsert, row.ID, row))
	}

	logger.Info("Schedule created",
		zap.String("schedule_id", row.ID),
		zap.String("purok", row.Purok),
		zap.String("date", row.Date),
	)

	return row, nil
}
