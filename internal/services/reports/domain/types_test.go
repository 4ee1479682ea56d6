package domain

import (
	"testing"
	"time"
)

func TestResolvePeriod(t *testing.T) {
	// Thursday 2025-03-13 14:30 UTC
	now := time.Date(2025, time.March, 13, 14, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		period string
		since  time.Time
		until  time.Time
	}{
		{"today", day(2025, 3, 13), day(2025, 3, 14)},
		{"daily", day(2025, 3, 13), day(2025, 3, 14)},
		{"", day(2025, 3, 13), day(2025, 3, 14)},
		{"nonsense", day(2025, 3, 13), day(2025, 3, 14)},
		{"yesterday", day(2025, 3, 12), day(2025, 3, 13)},
		{"this week", day(2025, 3, 10), day(2025, 3, 14)},
		{"weekly", day(2025, 3, 10), day(2025, 3, 14)},
		{"this month", day(2025, 3, 1), day(2025, 3, 14)},
		{"monthly", day(2025, 3, 1), day(2025, 3, 14)},
		{"last month", day(2025, 2, 1), day(2025, 3, 1)},
	}
	for _, tc := range cases {
		w := ResolvePeriod(now, tc.period)
		if !w.Since.Equal(tc.since) || !w.Until.Equal(tc.until) {
			t.Fatalf("ResolvePeriod(%q) = [%v, %v), want [%v, %v)",
				tc.period, w.Since, w.Until, tc.since, tc.until)
		}
	}
}

func TestResolvePeriodWeekStartsMonday(t *testing.T) {
	// Sunday belongs to the week that began six days earlier
	sunday := time.Date(2025, time.March, 16, 9, 0, 0, 0, time.UTC)
	w := ResolvePeriod(sunday, "this week")
	wantSince := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !w.Since.Equal(wantSince) {
		t.Fatalf("week since = %v, want %v", w.Since, wantSince)
	}
}

func TestWindowPrevious(t *testing.T) {
	w := Window{
		Since: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
	}
	p := w.Previous()
	if !p.Until.Equal(w.Since) {
		t.Fatalf("previous until = %v, want %v", p.Until, w.Since)
	}
	if !p.Since.Equal(time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("previous since = %v", p.Since)
	}
}

func TestWindowDays(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := (Window{Since: base, Until: base.AddDate(0, 0, 13)}).Days(); got != 13 {
		t.Fatalf("Days() = %d, want 13", got)
	}
	// sub-day windows count as one day
	if got := (Window{Since: base, Until: base.Add(6 * time.Hour)}).Days(); got != 1 {
		t.Fatalf("Days() sub-day = %d, want 1", got)
	}
}
