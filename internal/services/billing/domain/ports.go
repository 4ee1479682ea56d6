package domain

import "context"

// ReaderPort looks up past bills for the gateway
type ReaderPort interface {
	// Get returns the bill with its items, or a not-found error
	Get(ctx context.Context, billNo int64) (Bill, error)
}
