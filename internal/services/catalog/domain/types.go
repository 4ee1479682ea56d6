// Package domain holds catalog types and contracts
package domain

// Product is one catalog entry. Price is the selling price; Cost is the
// purchase price used for margin reporting.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
	Stock float64 `json:"stock"`
	Unit  string  `json:"unit"`
}
