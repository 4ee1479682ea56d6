// Package module wires cash sessions using modkit
package module

import (
	modkit "tilltalk/internal/modkit"
	"tilltalk/internal/modkit/httpkit"
	str "tilltalk/internal/platform/strings"
	cashrepo "tilltalk/internal/services/cash/repo"
	cashsvc "tilltalk/internal/services/cash/service"
)

// Module implements the modkit.Module interface; cash serves ports only
type Module struct {
	deps  modkit.Deps
	name  string
	ports any

	svc cashsvc.Service
}

// New constructs a cash module with the provided dependencies
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("cash")}, opts...)...)

	repo := cashrepo.NewPG()
	svc := cashsvc.New(deps.PG, repo)

	m := &Module{deps: deps, name: b.Name, svc: svc}
	m.ports = svc
	return m
}

// MountRoutes implements the modkit.Module interface; cash mounts nothing
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service exposes cash sessions to sibling modules during wiring
func (m *Module) Service() cashsvc.Service { return m.svc }
