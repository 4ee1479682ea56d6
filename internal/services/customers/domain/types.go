// Package domain holds customer lookup types and contracts
package domain

// Customer is one customer record as the gateway presents it
type Customer struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Balance float64 `json:"balance"`
	Visits  int     `json:"visits"`
}
