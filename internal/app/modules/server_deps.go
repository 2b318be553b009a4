package modules

import (
	"kolekta.io/kolekta/internal/api/handlers"
	"kolekta.io/kolekta/internal/api/middleware"
	"kolekta.io/kolekta/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Security.JWTSecret),
			Issuer:     "kolekta",
			ExpiresIn:  cfg.Security.TokenLifetime,
		},
		RiverClient: infra.RiverClient,
		Hub:         infra.Hub,
		Activity:    infra.ActivityLog,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
