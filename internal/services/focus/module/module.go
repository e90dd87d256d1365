// Package module provides the focus module
package module

import (
	"net/http"

	"chalie/internal/modkit"
	"chalie/internal/modkit/httpkit"
	"chalie/internal/services/focus/domain"
	"chalie/internal/services/focus/repo"
	"chalie/internal/services/focus/service"
)

// Ports exposed by the focus module
type Ports struct {
	Session  domain.SessionPort
	Modifier domain.ModifierPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new focus module
func New(deps modkit.Deps) *Module {
	if deps.KV == nil {
		panic("focus module: requires a KV store")
	}
	opts := FromConfig(deps.Cfg)

	svc := service.New(deps.Log, repo.NewKV(deps.KV), service.Config{
		DefaultTTL:  opts.DefaultTTL,
		MaxModifier: opts.MaxModifier,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Session: svc, Modifier: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "focus" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
