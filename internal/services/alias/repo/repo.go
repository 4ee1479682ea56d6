// Package repo provides postgres access for the alias vocabulary
package repo

import (
	"context"

	"tilltalk/internal/modkit/repokit"
)

// Repo defines the repository contract for aliases
type Repo interface {
	LoadAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, alias, target string) error
	Delete(ctx context.Context, alias string) error
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

func (r *queries) LoadAll(ctx context.Context) (map[string]string, error) {
	const sql = `select alias, target from aliases`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var a, t string
		if err := rows.Scan(&a, &t); err != nil {
			return nil, err
		}
		out[a] = t
	}
	return out, rows.Err()
}

func (r *queries) Upsert(ctx context.Context, alias, target string) error {
	const sql = `
insert into aliases (alias, target, updated_at)
values ($1, $2, now())
on conflict (alias) do update set target = excluded.target, updated_at = now()
`
	_, err := r.q.Exec(ctx, sql, alias, target)
	return err
}

func (r *queries) Delete(ctx context.Context, alias string) error {
	const sql = `delete from aliases where alias = $1`
	_, err := r.q.Exec(ctx, sql, alias)
	return err
}
