// Package module wires message ledger endpoints into the API using modkit
package module

import (
	"net/http"

	"chalie/internal/modkit"
	"chalie/internal/modkit/httpkit"
	str "chalie/internal/platform/strings"

	messageshttp "chalie/internal/services/api/messages/http"
	msgdom "chalie/internal/services/messages/domain"
)

// Ports declares the worker ports this API module depends on
type Ports struct {
	Reader msgdom.ReaderPort
}

// Module implements the messages API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	reader msgdom.ReaderPort
}

// New constructs the messages API module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("api-messages"),
		modkit.WithPrefix("/messages"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Reader == nil {
		panic("messages API module: expected WithPorts(api/messages/module.Ports) with a Reader")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		reader:    ports.Reader,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		messageshttp.Register(r, m.reader)
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
func (m *Module) Name() string { return str.MustString(m.name, "api-messages") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Reader: m.reader} }
