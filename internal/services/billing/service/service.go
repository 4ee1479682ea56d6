// Package service contains billing lookup workflows
package service

import (
	"context"

	"tilltalk/internal/modkit/repokit"
	"tilltalk/internal/services/billing/domain"
	"tilltalk/internal/services/billing/repo"
)

// Service defines the service contract for billing
type Service interface{ domain.ReaderPort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new billing service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("billing.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("billing.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Get returns one bill with its line items
func (s *Svc) Get(ctx context.Context, billNo int64) (domain.Bill, error) {
	head, items, err := s.Repo.Get(ctx, billNo)
	if err != nil {
		return domain.Bill{}, err
	}
	out := domain.Bill{
		BillNo:       head.BillNo,
		Date:         head.Date,
		CustomerName: head.CustomerName,
		PaymentMode:  head.PaymentMode,
		Total:        head.Total,
		Items:        make([]domain.Item, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, domain.Item{ProductName: it.ProductName, Qty: it.Qty, Total: it.Total})
	}
	return out, nil
}
