package domain

import "context"

// ReaderPort is the catalog read surface consumed by the gateway
type ReaderPort interface {
	ListAll(ctx context.Context) ([]Product, error)
	LowStock(ctx context.Context, threshold float64) ([]Product, error)
	SlowMoving(ctx context.Context, idleDays int) ([]Product, error)
}

// WriterPort mutates individual product fields
type WriterPort interface {
	UpdatePrice(ctx context.Context, id int64, price float64) error
	UpdateStock(ctx context.Context, id int64, stock float64) error
}

// ServicePort is the full catalog contract
type ServicePort interface {
	ReaderPort
	WriterPort
}
