// Package service contains cash session workflows
package service

import (
	"context"

	"tilltalk/internal/modkit/repokit"
	perr "tilltalk/internal/platform/errors"
	"tilltalk/internal/services/cash/domain"
	"tilltalk/internal/services/cash/repo"
)

// Service defines the service contract for cash sessions
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new cash service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("cash.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("cash.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Current returns the open session
func (s *Svc) Current(ctx context.Context) (domain.Session, error) {
	row, err := s.Repo.Current(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{ID: row.ID, OpenedAt: row.OpenedAt, OpenedBy: row.OpenedBy}, nil
}

// AddTransaction records a payout or payin against an open session
func (s *Svc) AddTransaction(ctx context.Context, sessionID int64, kind string, amount float64, reason string) error {
	if kind != domain.TxPayout && kind != domain.TxPayin {
		return perr.InvalidArgf("unknown transaction kind %q", kind)
	}
	if amount <= 0 {
		return perr.InvalidArgf("amount must be positive")
	}
	return s.Repo.InsertTransaction(ctx, sessionID, kind, amount, reason)
}
