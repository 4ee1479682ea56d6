// Package domain holds reporting types and the period grammar
package domain

import "time"

// Window is a half-open [Since, Until) reporting range
type Window struct {
	Since time.Time
	Until time.Time
}

// Days returns the whole-day length of the window, minimum 1
func (w Window) Days() int {
	d := int(w.Until.Sub(w.Since).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}

// Previous returns the window of equal length ending at Since
func (w Window) Previous() Window {
	span := w.Until.Sub(w.Since)
	return Window{Since: w.Since.Add(-span), Until: w.Since}
}

// ResolvePeriod maps a spoken period phrase to a concrete window
// anchored at now. Unknown phrases resolve to today.
func ResolvePeriod(now time.Time, period string) Window {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "yesterday":
		return Window{Since: day.AddDate(0, 0, -1), Until: day}
	case "this week", "weekly":
		// week starts monday
		wd := int(day.Weekday())
		if wd == 0 {
			wd = 7
		}
		start := day.AddDate(0, 0, -(wd - 1))
		return Window{Since: start, Until: day.AddDate(0, 0, 1)}
	case "this month", "monthly":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Since: start, Until: day.AddDate(0, 0, 1)}
	case "last month":
		thisStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Since: thisStart.AddDate(0, -1, 0), Until: thisStart}
	default: // today, todays, daily, unknown
		return Window{Since: day, Until: day.AddDate(0, 0, 1)}
	}
}

// Summary is the headline sales aggregate for a window
type Summary struct {
	Total float64 `json:"total"`
	Bills int     `json:"bills"`
}

// PaymentSplit is revenue grouped by payment mode
type PaymentSplit struct {
	Mode  string  `json:"mode"`
	Total float64 `json:"total"`
}

// ProfitRow is per-product margin over a window
type ProfitRow struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// ProductSales is per-product volume over a window
type ProductSales struct {
	Name    string  `json:"name"`
	Qty     float64 `json:"qty"`
	Revenue float64 `json:"revenue"`
}

// Comparison contrasts a window with the equal window before it
type Comparison struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	PercentChange float64 `json:"percent_change"`
}

// Projection extrapolates month-to-date revenue to a full month
type Projection struct {
	MonthToDate  float64 `json:"month_to_date"`
	DailyAverage float64 `json:"daily_average"`
	Projected    float64 `json:"projected"`
}

// Expense is one cash payout
type Expense struct {
	Amount float64   `json:"amount"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// Supplier is one supplier contact
type Supplier struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
