// Package service contains customer lookup workflows
package service

import (
	"context"

	"tilltalk/internal/modkit/repokit"
	"tilltalk/internal/services/customers/domain"
	"tilltalk/internal/services/customers/repo"
)

// Service defines the service contract for customers
type Service interface{ domain.ReaderPort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new customers service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("customers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("customers.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Search matches q against customer names and phone numbers
func (s *Svc) Search(ctx context.Context, q string) ([]domain.Customer, error) {
	rows, err := s.Repo.Search(ctx, q, 10)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Customer, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Customer{Name: r.Name, Phone: r.Phone, Balance: r.Balance, Visits: r.Visits})
	}
	return out, nil
}
