// Package domain holds the active cart types and contract
package domain

// Line is one product line in the active cart
type Line struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Qty       float64 `json:"qty"`
	Price     float64 `json:"price"`
	Unit      string  `json:"unit"`
}

// Total is the price-times-quantity sum of a line
func (l Line) Total() float64 { return l.Qty * l.Price }
