// Package repo provides postgres access for customer lookup
package repo

import (
	"context"

	"tilltalk/internal/modkit/repokit"
)

// Repo defines the repository contract for customers
type Repo interface {
	Search(ctx context.Context, q string, limit int) ([]RowCustomer, error)
}

// RowCustomer represents a customer row from the database
type RowCustomer struct {
	Name    string
	Phone   string
	Balance float64
	Visits  int
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

func (r *queries) Search(ctx context.Context, q string, limit int) ([]RowCustomer, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	const sql = `
select name, coalesce(phone, ''), coalesce(balance, 0), coalesce(visit_count, 0)
from customers
where name ilike '%' || $1 || '%' or phone like '%' || $1 || '%'
order by name
limit $2
`
	rows, err := r.q.Query(ctx, sql, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RowCustomer
	for rows.Next() {
		var c RowCustomer
		if err := rows.Scan(&c.Name, &c.Phone, &c.Balance, &c.Visits); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
