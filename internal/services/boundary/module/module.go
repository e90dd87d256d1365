// Package module implements the boundary module
package module

import (
	"net/http"

	"chalie/internal/modkit"
	"chalie/internal/modkit/httpkit"
	"chalie/internal/services/boundary/domain"
	"chalie/internal/services/boundary/repo"
	"chalie/internal/services/boundary/service"

	core "chalie/internal/core/boundary"
)

// Ports exposed by the boundary module
type Ports struct {
	Decider domain.DeciderPort
	States  domain.StatePort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new boundary module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("boundary"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("boundary module: expected WithPorts(boundary/domain.Ports)")
	}
	if ports.Messages == nil || ports.Topics == nil {
		panic("boundary module: Ports missing Messages or Topics")
	}
	if deps.KV == nil {
		panic("boundary module: requires a KV store")
	}

	cfg := FromConfig(deps.Cfg)

	states := repo.NewKVState(deps.Log, deps.KV, cfg.StateTTL)
	svc := service.New(deps.Log, states, ports.Messages, ports.Topics, service.Config{
		Params: core.Params{
			FastWindow:   cfg.FastWindow,
			SlowWindow:   cfg.SlowWindow,
			LeakRate:     cfg.LeakRate,
			BoundaryBase: cfg.BoundaryBase,
		},
	})
	svc.Focus = ports.Focus
	if deps.CH != nil {
		svc.Events = service.NewCHSink(deps.CH)
	}

	m := &Module{deps: deps}
	m.ports = Ports{Decider: svc, States: states}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "boundary" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
