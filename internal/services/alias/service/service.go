// Package service contains the alias vocabulary workflows
package service

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"tilltalk/internal/modkit/repokit"
	perr "tilltalk/internal/platform/errors"
	"tilltalk/internal/services/alias/domain"
	"tilltalk/internal/services/alias/repo"
)

// Service defines the service contract for aliases
type Service interface{ domain.ServicePort }

// Svc implements the Service interface.
//
// Reads go against an immutable snapshot map swapped atomically on every
// mutation, so in-flight Resolve calls never observe a half-written map.
// Writers persist to postgres first and publish the new snapshot only
// after the write is durable.
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	mu   sync.Mutex // serializes writers
	snap atomic.Pointer[map[string]string]
}

// New creates a new alias service and loads the vocabulary wholesale
func New(ctx context.Context, db repokit.TxRunner, binder repokit.Binder[repo.Repo]) (*Svc, error) {
	if db == nil {
		panic("alias.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("alias.Service requires a non nil Repo binder")
	}
	s := &Svc{Repo: binder.Bind(db), binder: binder, db: db}

	m, err := s.Repo.LoadAll(ctx)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "alias load")
	}
	if m == nil {
		m = map[string]string{}
	}
	s.snap.Store(&m)
	return s, nil
}

// Resolve returns the canonical term for word, or the lowercased word on
// a miss. Single hop, no chaining.
func (s *Svc) Resolve(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	m := *s.snap.Load()
	if t, ok := m[w]; ok {
		return t
	}
	return w
}

// All returns the vocabulary sorted by nothing in particular
func (s *Svc) All() []domain.Pair {
	m := *s.snap.Load()
	out := make([]domain.Pair, 0, len(m))
	for a, t := range m {
		out = append(out, domain.Pair{Alias: a, Target: t})
	}
	return out
}

// Add learns alias -> target. Both sides are lowercased; the mapping is
// persisted before it becomes visible to Resolve.
func (s *Svc) Add(ctx context.Context, alias, target string) error {
	a := strings.ToLower(strings.TrimSpace(alias))
	t := strings.ToLower(strings.TrimSpace(target))
	if a == "" || t == "" {
		return perr.InvalidArgf("alias and target must be non empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Repo.Upsert(ctx, a, t); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "alias upsert")
	}
	s.publish(func(next map[string]string) { next[a] = t })
	return nil
}

// Remove forgets alias. Removing an absent key is a no-op, not an error.
func (s *Svc) Remove(ctx context.Context, alias string) error {
	a := strings.ToLower(strings.TrimSpace(alias))
	if a == "" {
		return perr.InvalidArgf("alias must be non empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Repo.Delete(ctx, a); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "alias delete")
	}
	s.publish(func(next map[string]string) { delete(next, a) })
	return nil
}

// publish copies the current snapshot, applies mutate, and swaps the
// pointer. Callers must hold mu.
func (s *Svc) publish(mutate func(map[string]string)) {
	cur := *s.snap.Load()
	next := make(map[string]string, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	mutate(next)
	s.snap.Store(&next)
}
