package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"kolekta.io/kolekta/internal/api/handlers"
	"kolekta.io/kolekta/internal/jobs"
	"kolekta.io/kolekta/internal/service"
	"kolekta.io/kolekta/internal/usecase"
)

// MessagingModule wires SMS broadcast: history queries, the dispatch
// worker, and the enqueueing use case.
//
// The use case needs the River client, which only exists after the
// worker registry is sealed, so construction is two-phase: register
// workers first, then BindRiver once the client is up.
type MessagingModule struct {
	infra      *Infrastructure
	smsHistory *service.SMSService
	sendUC     *usecase.SendSMSUseCase
}

// NewMessagingModule creates the messaging module. BindRiver must be
// called after River initialization before serving traffic.
func NewMessagingModule(infra *Infrastructure) *MessagingModule {
	return &MessagingModule{
		infra:      infra,
		smsHistory: service.NewSMSService(infra.EntClient),
	}
}

// BindRiver wires the enqueueing use case to the live River client.
func (m *MessagingModule) BindRiver() error {
	if m == nil || m.infra == nil || m.infra.EntClient == nil || m.infra.RiverClient == nil {
		return fmt.Errorf("messaging module requires ent client and river client")
	}
	m.sendUC = usecase.NewSendSMSUseCase(m.infra.EntClient, m.infra.RiverClient).WithFeed(m.infra.Hub)
	return nil
}

func (m *MessagingModule) Name() string { return "messaging" }

func (m *MessagingModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.SMSHist = m.smsHistory
	deps.SendSMSUC = m.sendUC
}

func (m *MessagingModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewSMSDispatchWorker(m.infra.EntClient, m.infra.SMSGateway))
}

func (m *MessagingModule) Shutdown(context.Context) error { return nil }
