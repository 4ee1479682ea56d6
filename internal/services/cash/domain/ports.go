package domain

import "context"

// ServicePort is the cash session contract consumed by the gateway
type ServicePort interface {
	// Current returns the open session or a not-found error when the
	// drawer has not been opened
	Current(ctx context.Context) (Session, error)

	// AddTransaction records a payout or payin against an open session
	AddTransaction(ctx context.Context, sessionID int64, kind string, amount float64, reason string) error
}
