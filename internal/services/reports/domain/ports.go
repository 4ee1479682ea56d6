package domain

import "context"

// ServicePort is the reporting surface the dispatcher consumes
type ServicePort interface {
	Summary(ctx context.Context, w Window) (Summary, error)
	PaymentSplits(ctx context.Context, w Window) ([]PaymentSplit, error)
	Profit(ctx context.Context, w Window) ([]ProfitRow, error)
	TopProducts(ctx context.Context, w Window, limit int, ascending bool) ([]ProductSales, error)
	Compare(ctx context.Context, w Window) (Comparison, error)
	Project(ctx context.Context, w Window) (Projection, error)
	Expenses(ctx context.Context, w Window) ([]Expense, error)
	Suppliers(ctx context.Context) ([]Supplier, error)
}
