package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tilltalk/internal/modkit/repokit"
	"tilltalk/internal/services/alias/repo"
)

// memRepo is an in-memory stand-in for the postgres repo
type memRepo struct {
	mu       sync.Mutex
	m        map[string]string
	failNext bool
}

func (r *memRepo) LoadAll(context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.m))
	for k, v := range r.m {
		out[k] = v
	}
	return out, nil
}

func (r *memRepo) Upsert(_ context.Context, alias, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return errors.New("boom")
	}
	r.m[alias] = target
	return nil
}

func (r *memRepo) Delete(_ context.Context, alias string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return errors.New("boom")
	}
	delete(r.m, alias)
	return nil
}

// nopTx satisfies repokit.TxRunner; the mem repo never touches it
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

func newSvc(t *testing.T, seed map[string]string) (*Svc, *memRepo) {
	t.Helper()
	if seed == nil {
		seed = map[string]string{}
	}
	mem := &memRepo{m: seed}
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return mem })
	s, err := New(context.Background(), nopTx{}, binder)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, mem
}

func TestResolveRoundTrip(t *testing.T) {
	s, _ := newSvc(t, nil)
	ctx := context.Background()

	if err := s.Add(ctx, "Paal", "Milk"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := s.Resolve("paal"); got != "milk" {
		t.Fatalf("Resolve(paal) = %q, want milk", got)
	}
	if got := s.Resolve("PAAL"); got != "milk" {
		t.Fatalf("Resolve is not case folded: %q", got)
	}

	if err := s.Remove(ctx, "paal"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := s.Resolve("paal"); got != "paal" {
		t.Fatalf("Resolve after remove = %q, want paal", got)
	}
}

func TestResolveMissEchoesLowercased(t *testing.T) {
	s, _ := newSvc(t, nil)
	if got := s.Resolve("Unknown Word"); got != "unknown word" {
		t.Fatalf("Resolve miss = %q", got)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s, _ := newSvc(t, nil)
	if err := s.Remove(context.Background(), "ghost"); err != nil {
		t.Fatalf("Remove absent errored: %v", err)
	}
}

func TestAddValidates(t *testing.T) {
	s, _ := newSvc(t, nil)
	if err := s.Add(context.Background(), " ", "milk"); err == nil {
		t.Fatal("Add accepted empty alias")
	}
	if err := s.Add(context.Background(), "paal", ""); err == nil {
		t.Fatal("Add accepted empty target")
	}
}

func TestPersistFailureLeavesSnapshotUntouched(t *testing.T) {
	s, mem := newSvc(t, map[string]string{"chaya": "tea"})

	mem.failNext = true
	if err := s.Add(context.Background(), "kappi", "coffee"); err == nil {
		t.Fatal("Add swallowed repo failure")
	}
	if got := s.Resolve("kappi"); got != "kappi" {
		t.Fatalf("failed Add became visible: %q", got)
	}
	if got := s.Resolve("chaya"); got != "tea" {
		t.Fatalf("existing mapping lost: %q", got)
	}
}

func TestLoadsWholesaleAtStart(t *testing.T) {
	s, _ := newSvc(t, map[string]string{"ari": "rice", "vellam": "water"})
	if got := s.Resolve("ari"); got != "rice" {
		t.Fatalf("Resolve(ari) = %q, want rice", got)
	}
	if n := len(s.All()); n != 2 {
		t.Fatalf("All() = %d pairs, want 2", n)
	}
}

func TestConcurrentReadsDuringWrites(t *testing.T) {
	s, _ := newSvc(t, map[string]string{"paal": "milk"})
	ctx := context.Background()

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				// must always see a complete mapping, never a partial one
				if got := s.Resolve("paal"); got != "milk" {
					t.Errorf("Resolve(paal) = %q mid-write", got)
					return
				}
			}
		}()
	}
	for i := 0; i < 200; i++ {
		if err := s.Add(ctx, "kadi", "snacks"); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if err := s.Remove(ctx, "kadi"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}
	close(stop)
	wg.Wait()
}
