// Package repo provides postgres access for cash sessions
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"tilltalk/internal/modkit/repokit"
	perr "tilltalk/internal/platform/errors"
)

// Repo defines the repository contract for cash sessions
type Repo interface {
	Current(ctx context.Context) (RowSession, error)
	InsertTransaction(ctx context.Context, sessionID int64, kind string, amount float64, reason string) error
}

// RowSession represents an open session row
type RowSession struct {
	ID       int64
	OpenedAt time.Time
	OpenedBy string
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

func (r *queries) Current(ctx context.Context) (RowSession, error) {
	const sql = `
select id, opened_at, coalesce(opened_by, '')
from cash_sessions
where closed_at is null
order by opened_at desc
limit 1
`
	var s RowSession
	if err := r.q.QueryRow(ctx, sql).Scan(&s.ID, &s.OpenedAt, &s.OpenedBy); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return RowSession{}, perr.NotFoundf("no open cash session")
		}
		return RowSession{}, err
	}
	return s, nil
}

func (r *queries) InsertTransaction(ctx context.Context, sessionID int64, kind string, amount float64, reason string) error {
	const sql = `
insert into cash_transactions (session_id, kind, amount, reason, created_at)
values ($1, $2, $3, $4, now())
`
	_, err := r.q.Exec(ctx, sql, sessionID, kind, amount, reason)
	if err != nil {
		// session row can vanish between Current and the insert
		if perr.IsForeignKeyViolation(err) {
			return perr.NotFoundf("cash session %d not found", sessionID)
		}
		return perr.Wrap(err, perr.ErrorCodeDB, "insert cash transaction")
	}
	return nil
}
