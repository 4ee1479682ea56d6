// Package module wires the command gateway into the API using modkit
package module

import (
	"net/http"

	modkit "tilltalk/internal/modkit"
	"tilltalk/internal/modkit/httpkit"
	str "tilltalk/internal/platform/strings"
	gwdom "tilltalk/internal/services/gateway/domain"
	gwhttp "tilltalk/internal/services/gateway/http"
	gwsvc "tilltalk/internal/services/gateway/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc gwsvc.Service
}

// Ports declares the collaborator bundle this module requires at wiring time
type Ports struct {
	Collaborators gwdom.Collaborators
}

// New constructs the gateway module. The collaborator ports come from the
// sibling modules and are injected by the API assembly.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("gateway"),
		modkit.WithPrefix("/command"),
	}, opts...)...)

	injected, ok := b.Ports.(Ports)
	if !ok {
		panic("gateway module requires collaborator ports from the sibling modules")
	}

	svc := gwsvc.New(injected.Collaborators)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = svc

	external := b.Register
	m.register = func(r httpkit.Router) {
		gwhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
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
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service exposes the dispatcher, used by the REPL binary
func (m *Module) Service() gwsvc.Service { return m.svc }
