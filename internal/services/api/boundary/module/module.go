// Package module wires boundary endpoints into the API using modkit
package module

import (
	"net/http"

	"chalie/internal/modkit"
	"chalie/internal/modkit/httpkit"
	str "chalie/internal/platform/strings"

	boundaryhttp "chalie/internal/services/api/boundary/http"
	bdom "chalie/internal/services/boundary/domain"
)

// Ports declares the worker ports this API module depends on
type Ports struct {
	Decider bdom.DeciderPort
}

// Module implements the boundary API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	decider bdom.DeciderPort
}

// New constructs the boundary API module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("api-boundary"),
		modkit.WithPrefix("/boundary"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Decider == nil {
		panic("boundary API module: expected WithPorts(api/boundary/module.Ports) with a Decider")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		decider:   ports.Decider,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		boundaryhttp.Register(r, m.decider)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "api-boundary") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Decider: m.decider} }
