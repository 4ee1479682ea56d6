// Package repo implements the reporting repository against ClickHouse and Postgres.
// Sales facts live in ClickHouse (sales_lines); cash payouts and suppliers live
// in Postgres alongside the transactional tables.
package repo

import (
	"context"

	"tilltalk/internal/modkit/repokit"
	perr "tilltalk/internal/platform/errors"
	"tilltalk/internal/platform/store"
	"tilltalk/internal/services/reports/domain"
)

// Repo is the storage surface the reports service binds per-call
type Repo interface {
	Summary(ctx context.Context, w domain.Window) (domain.Summary, error)
	PaymentSplits(ctx context.Context, w domain.Window) ([]domain.PaymentSplit, error)
	Profit(ctx context.Context, w domain.Window) ([]domain.ProfitRow, error)
	ProductSales(ctx context.Context, w domain.Window, limit int, ascending bool) ([]domain.ProductSales, error)
	Expenses(ctx context.Context, w domain.Window) ([]domain.Expense, error)
	Suppliers(ctx context.Context) ([]domain.Supplier, error)
}

// NewHybrid constructs a hybrid storage binder using PG and CH
func NewHybrid(ch store.Clickhouse) repokit.Binder[Repo] { return &hybridBinder{ch: ch} }

type hybridBinder struct{ ch store.Clickhouse }

// Bind binds a Queryer to produce a Repo
func (b *hybridBinder) Bind(q repokit.Queryer) Repo { return &hybridStore{pg: q, ch: b.ch} }

type hybridStore struct {
	pg repokit.Queryer
	ch store.Clickhouse
}

// Summary totals revenue and distinct bills over the window
func (s *hybridStore) Summary(ctx context.Context, w domain.Window) (domain.Summary, error) {
	rs, err := s.ch.Query(ctx, `
		SELECT
			toFloat64(sum(line_total))   AS total,
			toInt64(uniqExact(bill_no))  AS bills
		FROM sales_lines
		WHERE sold_at >= ? AND sold_at < ?
	`, w.Since, w.Until)
	if err != nil {
		return domain.Summary{}, perr.Wrap(err, perr.ErrorCodeDB, "reports summary query")
	}
	defer rs.Close()

	var out domain.Summary
	if rs.Next() {
		var bills int64
		if err := rs.Scan(&out.Total, &bills); err != nil {
			return domain.Summary{}, perr.Wrap(err, perr.ErrorCodeDB, "reports summary scan")
		}
		out.Bills = int(bills)
	}
	if err := rs.Err(); err != nil {
		return domain.Summary{}, perr.Wrap(err, perr.ErrorCodeDB, "reports summary rows")
	}
	return out, nil
}

// PaymentSplits groups window revenue by payment mode, largest first
func (s *hybridStore) PaymentSplits(ctx context.Context, w domain.Window) ([]domain.PaymentSplit, error) {
	rs, err := s.ch.Query(ctx, `
		SELECT payment_mode, toFloat64(sum(line_total)) AS total
		FROM sales_lines
		WHERE sold_at >= ? AND sold_at < ?
		GROUP BY payment_mode
		ORDER BY total DESC
	`, w.Since, w.Until)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports payment split query")
	}
	defer rs.Close()

	var out []domain.PaymentSplit
	for rs.Next() {
		var p domain.PaymentSplit
		if err := rs.Scan(&p.Mode, &p.Total); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports payment split scan")
		}
		out = append(out, p)
	}
	if err := rs.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports payment split rows")
	}
	return out, nil
}

// Profit computes per-product revenue minus cost over the window
func (s *hybridStore) Profit(ctx context.Context, w domain.Window) ([]domain.ProfitRow, error) {
	rs, err := s.ch.Query(ctx, `
		SELECT
			product_name,
			toFloat64(sum(line_total)) AS revenue,
			toFloat64(sum(cost_total)) AS cost
		FROM sales_lines
		WHERE sold_at >= ? AND sold_at < ?
		GROUP BY product_name
		ORDER BY revenue - cost DESC
	`, w.Since, w.Until)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports profit query")
	}
	defer rs.Close()

	var out []domain.ProfitRow
	for rs.Next() {
		var r domain.ProfitRow
		if err := rs.Scan(&r.Name, &r.Revenue, &r.Cost); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports profit scan")
		}
		r.Profit = r.Revenue - r.Cost
		out = append(out, r)
	}
	if err := rs.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports profit rows")
	}
	return out, nil
}

// ProductSales ranks products by quantity sold; ascending surfaces worst sellers
func (s *hybridStore) ProductSales(
	ctx context.Context,
	w domain.Window,
	limit int,
	ascending bool,
) ([]domain.ProductSales, error) {
	dir := "DESC"
	if ascending {
		dir = "ASC"
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rs, err := s.ch.Query(ctx, `
		SELECT
			product_name,
			toFloat64(sum(qty))        AS qty,
			toFloat64(sum(line_total)) AS revenue
		FROM sales_lines
		WHERE sold_at >= ? AND sold_at < ?
		GROUP BY product_name
		ORDER BY qty `+dir+`
		LIMIT ?
	`, w.Since, w.Until, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports product sales query")
	}
	defer rs.Close()

	var out []domain.ProductSales
	for rs.Next() {
		var p domain.ProductSales
		if err := rs.Scan(&p.Name, &p.Qty, &p.Revenue); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports product sales scan")
		}
		out = append(out, p)
	}
	if err := rs.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports product sales rows")
	}
	return out, nil
}

// Expenses lists cash payouts in the window, newest first
func (s *hybridStore) Expenses(ctx context.Context, w domain.Window) ([]domain.Expense, error) {
	rows, err := s.pg.Query(ctx, `
		select amount, coalesce(reason, ''), created_at
		from cash_transactions
		where kind = 'payout'
		  and created_at >= $1 and created_at < $2
		order by created_at desc
	`, w.Since, w.Until)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports expenses query")
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.Amount, &e.Reason, &e.At); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports expenses scan")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports expenses rows")
	}
	return out, nil
}

// Suppliers lists supplier contacts by name
func (s *hybridStore) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := s.pg.Query(ctx, `
		select name, coalesce(phone, '')
		from suppliers
		order by name asc
	`)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports suppliers query")
	}
	defer rows.Close()

	var out []domain.Supplier
	for rows.Next() {
		var sup domain.Supplier
		if err := rows.Scan(&sup.Name, &sup.Phone); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports suppliers scan")
		}
		out = append(out, sup)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "reports suppliers rows")
	}
	return out, nil
}
