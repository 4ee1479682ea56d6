//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"tilltalk/internal/platform/store"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func TestAliasRepo_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "tilltalk-alias-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn},
	})
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	defer func() { _ = st.Close(ctx) }()

	const ddl = `
create table if not exists aliases (
	alias      text primary key,
	target     text not null,
	updated_at timestamptz not null default now()
)`
	if _, err := st.PG.Exec(ctx, ddl); err != nil {
		t.Fatalf("ddl: %v", err)
	}

	r := NewPG().Bind(st.PG)

	if err := r.Upsert(ctx, "paal", "milk"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// overwrite on conflict
	if err := r.Upsert(ctx, "paal", "amul milk"); err != nil {
		t.Fatalf("upsert overwrite: %v", err)
	}
	if err := r.Upsert(ctx, "chaya", "tea"); err != nil {
		t.Fatalf("upsert second: %v", err)
	}

	m, err := r.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m["paal"] != "amul milk" || m["chaya"] != "tea" {
		t.Fatalf("unexpected vocabulary: %#v", m)
	}

	if err := r.Delete(ctx, "paal"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	m, err = r.LoadAll(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := m["paal"]; ok {
		t.Fatalf("delete did not stick: %#v", m)
	}
}
