// Package module wires customer lookup using modkit
package module

import (
	modkit "tilltalk/internal/modkit"
	"tilltalk/internal/modkit/httpkit"
	str "tilltalk/internal/platform/strings"
	customersrepo "tilltalk/internal/services/customers/repo"
	customerssvc "tilltalk/internal/services/customers/service"
)

// Module implements the modkit.Module interface; customers serves ports only
type Module struct {
	deps  modkit.Deps
	name  string
	ports any

	svc customerssvc.Service
}

// New constructs a customers module with the provided dependencies
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("customers")}, opts...)...)

	repo := customersrepo.NewPG()
	svc := customerssvc.New(deps.PG, repo)

	m := &Module{deps: deps, name: b.Name, svc: svc}
	m.ports = svc
	return m
}

// MountRoutes implements the modkit.Module interface; customers mounts nothing
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service exposes customer lookup to sibling modules during wiring
func (m *Module) Service() customerssvc.Service { return m.svc }
