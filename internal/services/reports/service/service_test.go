package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"tilltalk/internal/modkit/repokit"
	"tilltalk/internal/services/reports/domain"
	"tilltalk/internal/services/reports/repo"
)

// memRepo returns canned aggregates keyed by window start
type memRepo struct {
	summaries map[time.Time]domain.Summary
	err       error
}

func (r *memRepo) Summary(_ context.Context, w domain.Window) (domain.Summary, error) {
	if r.err != nil {
		return domain.Summary{}, r.err
	}
	return r.summaries[w.Since], nil
}

func (r *memRepo) PaymentSplits(context.Context, domain.Window) ([]domain.PaymentSplit, error) {
	return nil, nil
}
func (r *memRepo) Profit(context.Context, domain.Window) ([]domain.ProfitRow, error) {
	return nil, nil
}
func (r *memRepo) ProductSales(context.Context, domain.Window, int, bool) ([]domain.ProductSales, error) {
	return nil, nil
}
func (r *memRepo) Expenses(context.Context, domain.Window) ([]domain.Expense, error) {
	return nil, nil
}
func (r *memRepo) Suppliers(context.Context) ([]domain.Supplier, error) { return nil, nil }

type nopTx struct{}

func (nopTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, errors.New("unused")
}
func (nopTx) Query(context.Context, string, ...any) (repokit.Rows, error) {
	return nil, errors.New("unused")
}
func (nopTx) QueryRow(context.Context, string, ...any) repokit.Row { return nil }
func (nopTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	return fn(nopTx{})
}

func newSvc(mem *memRepo) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return mem })
	return New(nopTx{}, binder)
}

func day(d int) time.Time { return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC) }

func TestCompare(t *testing.T) {
	w := domain.Window{Since: day(13), Until: day(14)}
	mem := &memRepo{summaries: map[time.Time]domain.Summary{
		day(13): {Total: 1500, Bills: 20},
		day(12): {Total: 1200, Bills: 18},
	}}
	got, err := newSvc(mem).Compare(context.Background(), w)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got.Current != 1500 || got.Previous != 1200 {
		t.Fatalf("totals = %+v", got)
	}
	if math.Abs(got.PercentChange-25) > 1e-9 {
		t.Fatalf("percent change = %v, want 25", got.PercentChange)
	}
}

func TestCompareZeroPrevious(t *testing.T) {
	w := domain.Window{Since: day(13), Until: day(14)}
	mem := &memRepo{summaries: map[time.Time]domain.Summary{day(13): {Total: 900}}}
	got, err := newSvc(mem).Compare(context.Background(), w)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got.PercentChange != 0 {
		t.Fatalf("percent change with empty previous = %v, want 0", got.PercentChange)
	}
}

func TestProject(t *testing.T) {
	// 10 days into the month, 5000 sold so far
	w := domain.Window{Since: day(1), Until: day(11)}
	mem := &memRepo{summaries: map[time.Time]domain.Summary{day(1): {Total: 5000}}}
	got, err := newSvc(mem).Project(context.Background(), w)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got.MonthToDate != 5000 || got.DailyAverage != 500 || got.Projected != 15000 {
		t.Fatalf("projection = %+v", got)
	}
}

func TestCompareRepoError(t *testing.T) {
	mem := &memRepo{err: errors.New("ch down")}
	if _, err := newSvc(mem).Compare(context.Background(), domain.Window{Since: day(1), Until: day(2)}); err == nil {
		t.Fatal("expected error from repo")
	}
}
