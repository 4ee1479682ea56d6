// Package domain holds billing lookup types and contracts
package domain

import "time"

// Bill is one settled sale with its line items
type Bill struct {
	BillNo       int64     `json:"bill_no"`
	Date         time.Time `json:"date"`
	CustomerName string    `json:"customer_name"`
	PaymentMode  string    `json:"payment_mode"`
	Total        float64   `json:"total"`
	Items        []Item    `json:"items"`
}

// Item is one line on a bill
type Item struct {
	ProductName string  `json:"product_name"`
	Qty         float64 `json:"qty"`
	Total       float64 `json:"total"`
}
