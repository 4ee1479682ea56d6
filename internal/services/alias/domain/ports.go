package domain

import "context"

// ServicePort is the vocabulary contract consumed by the intent engine
// and the gateway.
//
// Resolve is snapshot-read only and never fails: it returns the mapped
// canonical term, or the lowercased input on a miss. Add and Remove
// persist before the in-memory snapshot is replaced, so a Resolve that
// observes a mutation is always observing durable state.
type ServicePort interface {
	Resolve(word string) string
	All() []Pair
	Add(ctx context.Context, alias, target string) error
	Remove(ctx context.Context, alias string) error
}
