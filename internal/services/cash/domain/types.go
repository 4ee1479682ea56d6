// Package domain holds cash session types and contracts
package domain

import "time"

// Session is an open cash drawer session
type Session struct {
	ID       int64     `json:"id"`
	OpenedAt time.Time `json:"opened_at"`
	OpenedBy string    `json:"opened_by"`
}

// Transaction kinds recorded against a session
const (
	TxPayout = "payout"
	TxPayin  = "payin"
)
