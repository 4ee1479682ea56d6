// Package module wires the alias vocabulary into the API using modkit
package module

import (
	"context"
	"fmt"
	"net/http"

	modkit "tilltalk/internal/modkit"
	"tilltalk/internal/modkit/httpkit"
	str "tilltalk/internal/platform/strings"
	aliashttp "tilltalk/internal/services/alias/http"
	aliasrepo "tilltalk/internal/services/alias/repo"
	aliassvc "tilltalk/internal/services/alias/service"
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

	svc aliassvc.Service
}

// New constructs the alias module. The vocabulary is loaded wholesale
// here; a store that cannot serve it is a startup failure, not a
// degraded mode.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("alias"), modkit.WithPrefix("/aliases")}, opts...)...)

	repo := aliasrepo.NewPG()
	svc, err := aliassvc.New(context.Background(), deps.PG, repo)
	if err != nil {
		panic(fmt.Errorf("alias module: %w", err))
	}

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
		aliashttp.Register(r, m.svc)
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

// Service exposes the vocabulary to sibling modules during wiring
func (m *Module) Service() aliassvc.Service { return m.svc }
