// Package modules contains domain-oriented dependency modules for the
// composition root. Each module wires its own services, use cases, and
// background workers, then contributes them into the shared HTTP server
// deps.
package modules

import (
	"context"

	"github.com/riverqueue/river"

	"kolekta.io/kolekta/internal/api/handlers"
)

// Module represents a domain-specific dependency unit in the composition root.
type Module interface {
	// Name returns a stable module identifier for logging/debugging.
	Name() string

	// ContributeServerDeps injects module-owned dependencies into the HTTP server deps.
	ContributeServerDeps(*handlers.ServerDeps)

	// RegisterWorkers registers module workers into a shared River worker registry.
	RegisterWorkers(*river.Workers)

	// Shutdown performs module-local graceful cleanup.
	Shutdown(context.Context) error
}
