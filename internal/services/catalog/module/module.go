// Package module wires the catalog service using modkit
package module

import (
	modkit "tilltalk/internal/modkit"
	"tilltalk/internal/modkit/httpkit"
	str "tilltalk/internal/platform/strings"
	catalogrepo "tilltalk/internal/services/catalog/repo"
	catalogsvc "tilltalk/internal/services/catalog/service"
)

// Module implements the modkit.Module interface. The catalog exposes no
// routes of its own; it exists to serve ports to the gateway.
type Module struct {
	deps  modkit.Deps
	name  string
	ports any

	svc catalogsvc.Service
}

// New constructs a catalog module with the provided dependencies
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("catalog")}, opts...)...)

	repo := catalogrepo.NewPG()
	svc := catalogsvc.New(deps.PG, repo)

	m := &Module{deps: deps, name: b.Name, svc: svc}
	m.ports = svc
	return m
}

// MountRoutes implements the modkit.Module interface; the catalog mounts nothing
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service exposes the catalog to sibling modules during wiring
func (m *Module) Service() catalogsvc.Service { return m.svc }
