// Package module wires focus endpoints into the API using modkit
// routes are bearer-protected with a static operator token
package module

import (
	"crypto/subtle"
	"net/http"

	"chalie/internal/modkit"
	"chalie/internal/modkit/httpkit"
	perr "chalie/internal/platform/errors"
	str "chalie/internal/platform/strings"

	focushttp "chalie/internal/services/api/focus/http"
	focusdom "chalie/internal/services/focus/domain"
)

// Ports declares the worker ports this API module depends on
type Ports struct {
	Session focusdom.SessionPort
}

// Module implements the focus API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	sessions focusdom.SessionPort
	token    string
}

// New constructs the focus API module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("api-focus"),
		modkit.WithPrefix("/focus"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Session == nil {
		panic("focus API module: expected WithPorts(api/focus/module.Ports) with a Session")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		sessions:  ports.Session,
		token:     FromConfig(deps.Cfg).APIToken,
	}

	auth := httpkit.NewPortFunc(m.parseToken)

	external := b.Register
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, auth, func(pr httpkit.Router) {
			focushttp.Register(pr, m.sessions)
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// parseToken accepts the configured operator token; there is no user model
func (m *Module) parseToken(token string) (string, string, error) {
	if m.token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.token)) != 1 {
		return "", "", perr.Unauthorizedf("invalid token")
	}
	return "operator", "", nil
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
func (m *Module) Name() string { return str.MustString(m.name, "api-focus") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Session: m.sessions} }
