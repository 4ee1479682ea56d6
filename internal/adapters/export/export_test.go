package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	c := NewCSV(dir)
	c.now = func() time.Time { return time.Date(2025, 3, 13, 10, 4, 5, 0, time.UTC) }

	path, err := c.WriteCSV("Daily Sales", []string{"name", "qty"}, [][]string{
		{"Sugar 1kg", "4"},
		{"Milk, full cream", "2"},
	})
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if filepath.Base(path) != "daily-sales-20250313-100405.csv" {
		t.Fatalf("file name = %s", filepath.Base(path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := string(raw)
	if !strings.HasPrefix(got, "name,qty\n") {
		t.Fatalf("missing header: %q", got)
	}
	// comma in a field must be quoted
	if !strings.Contains(got, `"Milk, full cream",2`) {
		t.Fatalf("quoting broken: %q", got)
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Daily Sales":  "daily-sales",
		"  Profit!!  ": "profit",
		"":             "report",
		"trend_7d":     "trend-7d",
		"@@@":          "report",
	}
	for in, want := range cases {
		if got := slug(in); got != want {
			t.Fatalf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}
