// Package module wires the cart service using modkit
package module

import (
	modkit "tilltalk/internal/modkit"
	"tilltalk/internal/modkit/httpkit"
	str "tilltalk/internal/platform/strings"
	cartsvc "tilltalk/internal/services/cart/service"
)

// Module implements the modkit.Module interface; the cart serves ports only
type Module struct {
	name  string
	ports any

	svc cartsvc.Service
}

// New constructs a cart module
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("cart")}, opts...)...)

	svc := cartsvc.New()
	m := &Module{name: b.Name, svc: svc}
	m.ports = svc
	return m
}

// MountRoutes implements the modkit.Module interface; the cart mounts nothing
func (m *Module) MountRoutes(_ httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service exposes the cart to sibling modules during wiring
func (m *Module) Service() cartsvc.Service { return m.svc }
