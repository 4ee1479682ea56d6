// Package service implements the command dispatcher: the single entry
// point that turns an operator utterance into exactly one textual result.
//
// The flow per call is parse, dispatch, resolve. A parse miss is not an
// error; it routes to the knowledge fallback. Every collaborator failure
// is recovered at the Execute boundary and rendered into a failed result,
// so no call ever leaves without feedback.
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tilltalk/internal/adapters/hardware"
	"tilltalk/internal/adapters/notify"
	"tilltalk/internal/core/command"
	"tilltalk/internal/core/intent"
	"tilltalk/internal/core/knowledge"
	"tilltalk/internal/platform/logger"
	pnet "tilltalk/internal/platform/net"
	"tilltalk/internal/services/gateway/domain"
)

const (
	// stock level at or under which a product counts as running low
	defaultLowStockAt = 5
	// days without a sale before a product counts as dead stock
	defaultDeadStockDays = 180
	// markdown applied by clearance when the speaker names no percent
	defaultClearancePct = 25
)

const msgNotUnderstood = "I didn't understand that command."

// Service defines the service contract for the gateway
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	col  domain.Collaborators
	eng  *intent.Engine
	know *knowledge.Base
	log  logger.Logger
	now  func() time.Time

	lowStockAt    float64
	deadStockDays int
}

// Option adjusts a Svc
type Option func(*Svc)

// WithClock pins the wall clock, used by tests
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// WithLowStockAt overrides the low stock threshold
func WithLowStockAt(n float64) Option {
	return func(s *Svc) { s.lowStockAt = n }
}

// New creates the dispatcher. Aliases, Catalog, Cart, Billing, Customers,
// Reports and Cash are required; Hardware, Export, Notify and Guard may be
// absent and degrade to distinct "unavailable" behavior.
func New(col domain.Collaborators, opts ...Option) *Svc {
	if col.Aliases == nil || col.Catalog == nil || col.Cart == nil {
		panic("gateway.Service requires alias, catalog and cart ports")
	}
	if col.Billing == nil || col.Customers == nil || col.Reports == nil || col.Cash == nil {
		panic("gateway.Service requires billing, customers, reports and cash ports")
	}
	if col.Hardware == nil {
		col.Hardware = hardware.Disconnected{}
	}
	if col.Notify == nil {
		col.Notify = notify.Discard{}
	}
	s := &Svc{
		col:           col,
		eng:           intent.New(col.Aliases),
		know:          knowledge.New(),
		log:           *logger.Named("gateway"),
		now:           time.Now,
		lowStockAt:    defaultLowStockAt,
		deadStockDays: defaultDeadStockDays,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handle classifies and executes one utterance
func (s *Svc) Handle(ctx context.Context, utterance string) command.Result {
	cmd := s.eng.Parse(utterance)
	if cmd == nil {
		if answer, ok := s.know.Ask(utterance); ok {
			return command.Ok(answer)
		}
		return command.Fail(msgNotUnderstood)
	}
	s.log.Debug().Str("kind", string(cmd.Kind())).Str("operator", pnet.UserID(ctx)).Msg("utterance classified")
	return s.Execute(ctx, cmd)
}

// Execute runs one command. Nothing escapes: collaborator errors and
// panics alike are rendered into a failed result, and neither the
// dispatcher nor the alias store is left in a corrupted state.
func (s *Svc) Execute(ctx context.Context, cmd command.Command) (res command.Result) {
	// execution id ties the classify/fail/panic lines for one dispatch together
	eid := uuid.NewString()[:8]
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("eid", eid).Str("kind", string(cmd.Kind())).Interface("panic", r).Msg("handler panicked")
			res = command.Fail(fmt.Sprintf("Error: %v", r))
		}
	}()

	res, err := s.dispatch(ctx, cmd)
	if err != nil {
		s.log.Warn().Err(err).Str("eid", eid).Str("kind", string(cmd.Kind())).Msg("handler failed")
		return command.Fail("Error: " + err.Error())
	}
	return res
}

// dispatch routes to the handler for the command's variant
func (s *Svc) dispatch(ctx context.Context, cmd command.Command) (command.Result, error) {
	switch c := cmd.(type) {
	case command.AddItem:
		return s.handleAddItem(ctx, c)
	case command.RemoveItem:
		return s.handleRemoveItem(ctx, c)
	case command.ClearCart:
		s.col.Cart.Clear()
		return command.Did(command.ActionClearedCart, "Cart cleared"), nil
	case command.CheckStock:
		return s.handleCheckStock(ctx, c)
	case command.LearnAlias:
		return s.handleLearnAlias(ctx, c)
	case command.ReportQuery:
		return s.handleReportQuery(ctx, c)
	case command.BillLookup:
		return s.handleBillLookup(ctx, c)
	case command.CustomerLookup:
		return s.handleCustomerLookup(ctx, c)
	case command.InventoryQuery:
		return s.handleInventoryQuery(ctx, c)
	case command.SwitchTheme:
		return s.handleSwitchTheme(c)
	case command.Navigate:
		return s.handleNavigate(c)
	case command.HardwareAction:
		return s.handleHardwareAction(ctx, c)
	case command.DataModification:
		return s.handleDataModification(ctx, c)
	case command.AnalyticsQuery:
		return s.handleAnalyticsQuery(ctx, c)
	case command.AutoClearance:
		return s.handleAutoClearance(ctx, c)
	case command.AddExpense:
		return s.handleAddExpense(ctx, c)
	default:
		return command.Fail(msgNotUnderstood), nil
	}
}

// num renders a quantity or amount without trailing zeros
func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
