// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"kolekta.io/kolekta/internal/api/handlers"
	"kolekta.io/kolekta/internal/app/modules"
	"kolekta.io/kolekta/internal/config"
	"kolekta.io/kolekta/internal/infrastructure"
	"kolekta.io/kolekta/internal/jobs"
	"kolekta.io/kolekta/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	messaging := modules.NewMessagingModule(infra)
	allModules := []modules.Module{
		modules.NewCollectionModule(infra),
		modules.NewEngagementModule(infra),
		messaging,
	}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}

	// Inbox reconciliation runs on a timer and once at startup so a
	// restart never leaves stale duplicates sitting until the next tick.
	periodic := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.River.ReconcileInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationReconcileArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}

	if err := infra.InitRiver(workers, periodic); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	if err := messaging.BindRiver(); err != nil {
		infra.Close()
		return nil, fmt.Errorf("bind messaging module: %w", err)
	}

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server, serverDeps.JWTCfg.SigningKey),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}
