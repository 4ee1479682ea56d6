// Package service contains reporting workflows over the sales and cash stores
package service

import (
	"context"

	"tilltalk/internal/modkit/repokit"
	"tilltalk/internal/services/reports/domain"
	"tilltalk/internal/services/reports/repo"
)

// Service defines the service contract for reports
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new reports service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("reports.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reports.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Summary returns the headline sales aggregate for the window
func (s *Svc) Summary(ctx context.Context, w domain.Window) (domain.Summary, error) {
	return s.Repo.Summary(ctx, w)
}

// PaymentSplits returns window revenue grouped by payment mode
func (s *Svc) PaymentSplits(ctx context.Context, w domain.Window) ([]domain.PaymentSplit, error) {
	return s.Repo.PaymentSplits(ctx, w)
}

// Profit returns per-product margin for the window
func (s *Svc) Profit(ctx context.Context, w domain.Window) ([]domain.ProfitRow, error) {
	return s.Repo.Profit(ctx, w)
}

// TopProducts ranks products by quantity sold over the window
func (s *Svc) TopProducts(
	ctx context.Context,
	w domain.Window,
	limit int,
	ascending bool,
) ([]domain.ProductSales, error) {
	return s.Repo.ProductSales(ctx, w, limit, ascending)
}

// Compare contrasts the window against the equal window before it
func (s *Svc) Compare(ctx context.Context, w domain.Window) (domain.Comparison, error) {
	cur, err := s.Repo.Summary(ctx, w)
	if err != nil {
		return domain.Comparison{}, err
	}
	prev, err := s.Repo.Summary(ctx, w.Previous())
	if err != nil {
		return domain.Comparison{}, err
	}
	out := domain.Comparison{Current: cur.Total, Previous: prev.Total}
	if prev.Total > 0 {
		out.PercentChange = (cur.Total - prev.Total) / prev.Total * 100
	}
	return out, nil
}

// Project extrapolates the window's daily average to a 30-day month
func (s *Svc) Project(ctx context.Context, w domain.Window) (domain.Projection, error) {
	sum, err := s.Repo.Summary(ctx, w)
	if err != nil {
		return domain.Projection{}, err
	}
	avg := sum.Total / float64(w.Days())
	return domain.Projection{
		MonthToDate:  sum.Total,
		DailyAverage: avg,
		Projected:    avg * 30,
	}, nil
}

// Expenses lists cash payouts in the window
func (s *Svc) Expenses(ctx context.Context, w domain.Window) ([]domain.Expense, error) {
	return s.Repo.Expenses(ctx, w)
}

// Suppliers lists supplier contacts
func (s *Svc) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.Repo.Suppliers(ctx)
}
