package modules

import (
	"context"

	"github.com/riverqueue/river"

	"kolekta.io/kolekta/internal/api/handlers"
	"kolekta.io/kolekta/internal/service"
	"kolekta.io/kolekta/internal/usecase"
)

// CollectionModule wires the schedule domain: CRUD, status transitions,
// and the activity trail they produce.
type CollectionModule struct {
	infra        *Infrastructure
	schedules    *service.ScheduleService
	createUC     *usecase.CreateScheduleUseCase
	transitionUC *usecase.TransitionScheduleUseCase
}

// NewCollectionModule creates the collection module with explicit constructor wiring.
func NewCollectionModule(infra *Infrastructure) *CollectionModule {
	return &CollectionModule{
		infra:        infra,
		schedules:    service.NewScheduleService(infra.EntClient),
		createUC:     usecase.NewCreateScheduleUseCase(infra.EntClient, infra.ActivityLog).WithFeed(infra.Hub),
		transitionUC: usecase.NewTransitionScheduleUseCase(infra.EntClient, infra.ActivityLog).WithFeed(infra.Hub),
	}
}

func (m *CollectionModule) Name() string { return "collection" }

func (m *CollectionModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Schedules = m.schedules
	deps.CreateScheduleUC = m.createUC
	deps.TransitionUC = m.transitionUC
}

func (m *CollectionModule) RegisterWorkers(_ *river.Workers) {}

func (m *CollectionModule) Shutdown(context.Context) error { return nil }
