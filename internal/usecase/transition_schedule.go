package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kolekta.io/kolekta/ent"
	entschedule "kolekta.io/kolekta/ent/schedule"
	"kolekta.io/kolekta/internal/activity"
	"kolekta.io/kolekta/internal/feed"
	apperrors "kolekta.io/kolekta/internal/pkg/errors"
	"kolekta.io/kolekta/internal/pkg/logger"
	"kolekta.io/kolekta/internal/service"
)

// TransitionScheduleInput represents a status change request.
type TransitionScheduleInput struct {
	ScheduleID string
	Status     string
	Actor      string
}

// TransitionScheduleUseCase moves a schedule between collection states.
//
// Any state may move to any other state: collectors correct mistakes in
// the field, so there is no transition matrix. Every effective change
// leaves an activity entry; setting the current status again is a no-op
// and leaves none.
type TransitionScheduleUseCase struct {
	entClient   *ent.Client
	activityLog *activity.Logger
	hub         *feed.Hub
}

// NewTransitionScheduleUseCase creates a new TransitionScheduleUseCase.
func NewTransitionScheduleUseCase(entClient *ent.Client, activityLog *activity.Logger) *TransitionScheduleUseCase {
	return &TransitionScheduleUseCase{entClient: entClient, activityLog: activityLog}
}

// WithFeed sets the change feed hub (optional dependency).
func (uc *TransitionScheduleUseCase) WithFeed(hub *feed.Hub) *TransitionScheduleUseCase {
	uc.hub = hub
	return uc
}

// Execute applies the transition.
// The status update is the primary effect: if it fails nothing else
// happens. The activity entry is secondary: its failure is logged and
// the status change stands.
func (uc *TransitionScheduleUseCase) Execute(ctx context.Context, input TransitionScheduleInput) (*ent.Schedule, error) {
	newStatus, err := service.ParseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	row, err := uc.entClient.Schedule.Query().
		Where(entschedule.IDEQ(input.ScheduleID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrScheduleNotFoundf(input.ScheduleID)
		}
		return nil, fmt.Errorf("load schedule %s: %w", input.ScheduleID, err)
	}

	if row.Status == newStatus {
		// Setting the current status again is not a transition.
		return row, nil
	}

	updated, err := uc.entClient.Schedule.UpdateOneID(row.ID).
		SetStatus(newStatus).
		Save(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeScheduleUpdateFail,
			"failed to update schedule status", 500)
	}

	entry := activity.ScheduleTransition(updated.ID, updated.Purok, newStatus, input.Actor)
	if err := uc.activityLog.Append(ctx, entry); err != nil {
		logger.Warn("status updated but activity entry failed",
			zap.String("schedule_id", updated.ID),
			zap.String("status", string(newStatus)),
			zap.Error(err),
		)
	}

	if uc.hub != nil {
		uc.hub.Publish(ctx, feed.NewEvent(generateID(), feed.TableSchedules, feed.OpUpdate, updated.ID, updated))
	}

	logger.Info("Schedule status changed",
		zap.String("schedule_id", updated.ID),
		zap.String("from", string(row.Status)),
		zap.String("to", string(newStatus)),
		zap.String("actor", input.Actor),
	)

	return updated, nil
}
