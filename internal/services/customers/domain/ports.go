package domain

import "context"

// ReaderPort searches customers for the gateway
type ReaderPort interface {
	// Search matches q against name and phone; empty result is not an error
	Search(ctx context.Context, q string) ([]Customer, error)
}
