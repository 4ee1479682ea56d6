// Package repo provides postgres access for the product catalog
package repo

import (
	"context"

	"tilltalk/internal/modkit/repokit"
	perr "tilltalk/internal/platform/errors"
)

// Repo defines the repository contract for the catalog
type Repo interface {
	ListAll(ctx context.Context) ([]RowProduct, error)
	LowStock(ctx context.Context, threshold float64) ([]RowProduct, error)
	SlowMoving(ctx context.Context, idleDays int) ([]RowProduct, error)
	UpdatePrice(ctx context.Context, id int64, price float64) error
	UpdateStock(ctx context.Context, id int64, stock float64) error
}

// RowProduct represents a product row from the database
type RowProduct struct {
	ID    int64
	Name  string
	Code  string
	Price float64
	Cost  float64
	Stock float64
	Unit  string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const productCols = `id, name, coalesce(code, ''), sell_price, cost_price, stock, coalesce(unit, 'pcs')`

func (r *queries) collect(ctx context.Context, sql string, args ...any) ([]RowProduct, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RowProduct
	for rows.Next() {
		var p RowProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Price, &p.Cost, &p.Stock, &p.Unit); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *queries) ListAll(ctx context.Context) ([]RowProduct, error) {
	return r.collect(ctx, `select `+productCols+` from products order by id`)
}

func (r *queries) LowStock(ctx context.Context, threshold float64) ([]RowProduct, error) {
	if threshold <= 0 {
		threshold = 5
	}
	return r.collect(ctx,
		`select `+productCols+` from products where stock <= $1 order by stock asc, id`,
		threshold)
}

func (r *queries) SlowMoving(ctx context.Context, idleDays int) ([]RowProduct, error) {
	if idleDays <= 0 {
		idleDays = 30
	}
	const sql = `
select ` + productCols + `
from products
where last_sold_at is null or last_sold_at < now() - make_interval(days => $1)
order by last_sold_at nulls first, id
`
	return r.collect(ctx, sql, idleDays)
}

func (r *queries) UpdatePrice(ctx context.Context, id int64, price float64) error {
	tag, err := r.q.Exec(ctx, `update products set sell_price = $2 where id = $1`, id, price)
	if err != nil {
		// sell_price carries a non-negative check
		if perr.IsCheckViolation(err) {
			return perr.Newf(perr.ErrorCodeConflict, "price %.2f rejected for product %d", price, id)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("product %d", id)
	}
	return nil
}

func (r *queries) UpdateStock(ctx context.Context, id int64, stock float64) error {
	tag, err := r.q.Exec(ctx, `update products set stock = $2 where id = $1`, id, stock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("product %d", id)
	}
	return nil
}
