// Package domain defines the gateway's contract: one utterance in, one
// result out, with every domain side effect routed through a collaborator
// port.
package domain

import (
	"context"

	"tilltalk/internal/adapters/hardware"
	"tilltalk/internal/adapters/notify"
	"tilltalk/internal/core/command"
	aliasdom "tilltalk/internal/services/alias/domain"
	billingdom "tilltalk/internal/services/billing/domain"
	cartdom "tilltalk/internal/services/cart/domain"
	catalogdom "tilltalk/internal/services/catalog/domain"
	cashdom "tilltalk/internal/services/cash/domain"
	customersdom "tilltalk/internal/services/customers/domain"
	reportsdom "tilltalk/internal/services/reports/domain"
)

// Exporter renders report tables to files
type Exporter interface {
	WriteCSV(stem string, header []string, rows [][]string) (string, error)
}

// Collaborators are the domain ports the dispatcher's handlers call.
// Handlers are the only code that touches them; the dispatcher itself
// owns no mutable domain state.
type Collaborators struct {
	Aliases   aliasdom.ServicePort
	Catalog   catalogdom.ServicePort
	Cart      cartdom.ServicePort
	Billing   billingdom.ReaderPort
	Customers customersdom.ReaderPort
	Reports   reportsdom.ServicePort
	Cash      cashdom.ServicePort
	Hardware  hardware.Bridge
	Export    Exporter
	Notify    notify.Publisher

	// Guard verifies the backing stores for the system health query
	Guard func(ctx context.Context) error
}

// ServicePort is the gateway surface
type ServicePort interface {
	// Handle classifies utterance and executes the resulting command,
	// falling back to the knowledge base when nothing classifies.
	// It always returns exactly one result, never an error.
	Handle(ctx context.Context, utterance string) command.Result

	// Execute runs one already-classified command
	Execute(ctx context.Context, cmd command.Command) command.Result
}
