// Package module wires the reports service using modkit
package module

import (
	modkit "tilltalk/internal/modkit"
	"tilltalk/internal/modkit/httpkit"
	str "tilltalk/internal/platform/strings"
	reportsrepo "tilltalk/internal/services/reports/repo"
	reportssvc "tilltalk/internal/services/reports/service"
)

// Module implements the modkit.Module interface. Reports expose no routes
// of their own; the gateway renders them into spoken-command replies.
type Module struct {
	deps  modkit.Deps
	name  string
	ports any

	svc reportssvc.Service
}

// New constructs a reports module with the provided dependencies
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("reports")}, opts...)...)

	repo := reportsrepo.NewHybrid(deps.CH)
	svc := reportssvc.New(deps.PG, repo)

	m := &Module{deps: deps, name: b.Name, svc: svc}
	m.ports = svc
	return m
}

// MountRoutes implements the modkit.Module interface; reports mount nothing
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service exposes reporting to sibling modules during wiring
func (m *Module) Service() reportssvc.Service { return m.svc }
