package knowledge

import (
	"strings"
	"testing"
	"time"
)

func fixed(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 1, hour, 0, 0, 0, time.UTC)
	}
}

func TestAskDirectKeyword(t *testing.T) {
	b := New(WithRand(func(int) int { return 0 }))

	got, ok := b.Ask("thank you")
	if !ok {
		t.Fatal("Ask(thank you) missed")
	}
	if !strings.Contains(got, "Glad I could help") {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestAskTimeOfDayGreeting(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{9, "Good Morning"},
		{14, "Good Afternoon"},
		{20, "Good Evening"},
	}
	for _, tc := range cases {
		b := New(WithClock(fixed(tc.hour)))
		got, ok := b.Ask("hello")
		if !ok || !strings.Contains(got, tc.want) {
			t.Fatalf("Ask(hello) at %d = %q ok=%v, want %q", tc.hour, got, ok, tc.want)
		}
	}
}

func TestAskLongQuerySkipsDirectStage(t *testing.T) {
	b := New()
	// contains "bill" but is six-plus words of unrelated chatter
	if got, ok := b.Ask("my neighbour paid the electricity bill against my advice yesterday"); ok {
		t.Fatalf("long unrelated sentence answered: %q", got)
	}
}

func TestAskFuzzyStage(t *testing.T) {
	b := New()
	got, ok := b.Ask("printeer not working")
	if !ok {
		t.Fatal("Ask(printeer not working) missed")
	}
	if !strings.Contains(got, "Printer Troubleshooting") {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestAskMiss(t *testing.T) {
	b := New()
	for _, q := range []string{"", "quarterly astrophysics colloquium"} {
		if got, ok := b.Ask(q); ok {
			t.Fatalf("Ask(%q) = %q, want miss", q, got)
		}
	}
}

func TestAskRandomizedRepliesStayInPool(t *testing.T) {
	for pick := 0; pick < 4; pick++ {
		b := New(WithRand(func(n int) int { return pick % n }))
		got, ok := b.Ask("tell me a joke")
		if !ok || !strings.Contains(got, "Here's one") {
			t.Fatalf("Ask(joke) pick %d = %q ok=%v", pick, got, ok)
		}
	}
}
