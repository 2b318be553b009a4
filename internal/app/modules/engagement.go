package modules

import (
	"context"

	"github.com/riverqueue/river"

	"kolekta.io/kolekta/internal/api/handlers"
	"kolekta.io/kolekta/internal/jobs"
	"kolekta.io/kolekta/internal/notification"
	"kolekta.io/kolekta/internal/service"
	"kolekta.io/kolekta/internal/usecase"
)

// EngagementModule wires resident-facing concerns: reports and their
// official responses, feedback, the notification inbox, and educational
// content.
type EngagementModule struct {
	infra     *Infrastructure
	reports   *service.ReportService
	education *service.EducationService
	inbox     *notification.Inbox
	notifier  *notification.Triggers

	submitUC   *usecase.SubmitReportUseCase
	respondUC  *usecase.RespondReportUseCase
	feedbackUC *usecase.SubmitFeedbackUseCase
}

// NewEngagementModule creates the engagement module with explicit constructor wiring.
func NewEngagementModule(infra *Infrastructure) *EngagementModule {
	sender := notification.NewInboxSender(infra.EntClient).WithFeed(infra.Hub)
	notifier := notification.NewTriggers(sender)

	return &EngagementModule{
		infra:      infra,
		reports:    service.NewReportService(infra.EntClient),
		education:  service.NewEducationService(infra.EntClient),
		inbox:      notification.NewInbox(infra.EntClient),
		notifier:   notifier,
		submitUC:   usecase.NewSubmitReportUseCase(infra.EntClient).WithFeed(infra.Hub),
		respondUC:  usecase.NewRespondReportUseCase(infra.EntClient, notifier, infra.ActivityLog).WithFeed(infra.Hub),
		feedbackUC: usecase.NewSubmitFeedbackUseCase(infra.EntClient).WithFeed(infra.Hub),
	}
}

func (m *EngagementModule) Name() string { return "engagement" }

func (m *EngagementModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Reports = m.reports
	deps.Education = m.education
	deps.Inbox = m.inbox
	deps.SubmitReportUC = m.submitUC
	deps.RespondReportUC = m.respondUC
	deps.FeedbackUC = m.feedbackUC
}

func (m *EngagementModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewNotificationReconcileWorker(m.infra.EntClient))
}

func (m *EngagementModule) Shutdown(context.Context) error { return nil }
