// Package service contains catalog workflows
package service

import (
	"context"

	"tilltalk/internal/modkit/repokit"
	"tilltalk/internal/services/catalog/domain"
	"tilltalk/internal/services/catalog/repo"
)

// Service defines the service contract for the catalog
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new catalog service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("catalog.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("catalog.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

func toDomain(rows []repo.RowProduct) []domain.Product {
	out := make([]domain.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Product{
			ID:    r.ID,
			Name:  r.Name,
			Code:  r.Code,
			Price: r.Price,
			Cost:  r.Cost,
			Stock: r.Stock,
			Unit:  r.Unit,
		})
	}
	return out
}

// ListAll returns the full catalog in insertion order
func (s *Svc) ListAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

// LowStock returns products at or under threshold units
func (s *Svc) LowStock(ctx context.Context, threshold float64) ([]domain.Product, error) {
	rows, err := s.Repo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

// SlowMoving returns products with no sale in the last idleDays days
func (s *Svc) SlowMoving(ctx context.Context, idleDays int) ([]domain.Product, error) {
	rows, err := s.Repo.SlowMoving(ctx, idleDays)
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

// UpdatePrice sets the selling price of one product
func (s *Svc) UpdatePrice(ctx context.Context, id int64, price float64) error {
	return s.Repo.UpdatePrice(ctx, id, price)
}

// UpdateStock sets the on-hand stock of one product
func (s *Svc) UpdateStock(ctx context.Context, id int64, stock float64) error {
	return s.Repo.UpdateStock(ctx, id, stock)
}
