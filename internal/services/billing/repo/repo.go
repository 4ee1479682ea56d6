// Package repo provides postgres access for bill lookup
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"tilltalk/internal/modkit/repokit"
	perr "tilltalk/internal/platform/errors"
)

// Repo defines the repository contract for billing
type Repo interface {
	Get(ctx context.Context, billNo int64) (RowBill, []RowItem, error)
}

// RowBill represents a bill header row
type RowBill struct {
	BillNo       int64
	Date         time.Time
	CustomerName string
	PaymentMode  string
	Total        float64
}

// RowItem represents one bill line row
type RowItem struct {
	ProductName string
	Qty         float64
	Total       float64
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

func (r *queries) Get(ctx context.Context, billNo int64) (RowBill, []RowItem, error) {
	const head = `
select bill_no, created_at, coalesce(customer_name, ''), coalesce(payment_mode, 'cash'), total
from bills
where bill_no = $1
`
	var b RowBill
	err := r.q.QueryRow(ctx, head, billNo).Scan(&b.BillNo, &b.Date, &b.CustomerName, &b.PaymentMode, &b.Total)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return RowBill{}, nil, perr.NotFoundf("bill %d", billNo)
		}
		return RowBill{}, nil, err
	}

	const lines = `
select product_name, qty, line_total
from bill_items
where bill_no = $1
order by id
`
	rows, err := r.q.Query(ctx, lines, billNo)
	if err != nil {
		return RowBill{}, nil, err
	}
	defer rows.Close()

	var items []RowItem
	for rows.Next() {
		var it RowItem
		if err := rows.Scan(&it.ProductName, &it.Qty, &it.Total); err != nil {
			return RowBill{}, nil, err
		}
		items = append(items, it)
	}
	return b, items, rows.Err()
}
