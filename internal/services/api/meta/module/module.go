// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"langid/internal/core/version"
	modkit "langid/internal/modkit"
	"langid/internal/modkit/httpkit"

	metahttp "langid/internal/services/api/meta/http"
)

// Checks carries readiness probes; pass it with modkit.WithPorts
type Checks []metahttp.Check

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	checks    Checks
	startedAt time.Time
}

// New constructs a meta module mounted under /meta
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	checks, _ := b.Ports.(Checks)
	return &Module{built: b, checks: checks, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Checks:      m.checks,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
