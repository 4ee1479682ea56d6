// Package module wires billing lookup using modkit
package module

import (
	modkit "tilltalk/internal/modkit"
	"tilltalk/internal/modkit/httpkit"
	str "tilltalk/internal/platform/strings"
	billingrepo "tilltalk/internal/services/billing/repo"
	billingsvc "tilltalk/internal/services/billing/service"
)

// Module implements the modkit.Module interface; billing serves ports only
type Module struct {
	deps  modkit.Deps
	name  string
	ports any

	svc billingsvc.Service
}

// New constructs a billing module with the provided dependencies
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("billing")}, opts...)...)

	repo := billingrepo.NewPG()
	svc := billingsvc.New(deps.PG, repo)

	m := &Module{deps: deps, name: b.Name, svc: svc}
	m.ports = svc
	return m
}

// MountRoutes implements the modkit.Module interface; billing mounts nothing
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service exposes billing lookup to sibling modules during wiring
func (m *Module) Service() billingsvc.Service { return m.svc }
