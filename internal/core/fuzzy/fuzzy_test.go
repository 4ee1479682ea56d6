package fuzzy

import "testing"

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"milk", "milk", 1},
		{"milk", "", 0},
		{"milk", "milc", 0.75},
		{"abc", "xyz", 0},
	}
	for _, tc := range cases {
		if got := Similarity(tc.a, tc.b); got != tc.want {
			t.Fatalf("Similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestScoreTokenWindow(t *testing.T) {
	if got := Score("amul milk", "Amul Milk 500ml"); got != 1 {
		t.Fatalf("windowed exact match scored %v, want 1", got)
	}
	if got := Score("milk", "Amul Milk 500ml"); got != 1 {
		t.Fatalf("single token window scored %v, want 1", got)
	}
	if got := Score("notebook", "Amul Milk 500ml"); got >= DefaultThreshold {
		t.Fatalf("unrelated query scored %v, want < %v", got, DefaultThreshold)
	}
}

func TestBestMatch(t *testing.T) {
	cands := []Candidate{
		{Index: 0, Name: "Amul Milk 500ml", Code: "MILK500"},
		{Index: 1, Name: "Sugar 1kg", Code: "SUG1"},
		{Index: 2, Name: "Basmati Rice 5kg", Code: "RICE5"},
	}

	t.Run("typo resolves", func(t *testing.T) {
		m, ok := BestMatch("suggar", cands, DefaultThreshold)
		if !ok || m.Index != 1 {
			t.Fatalf("BestMatch = %+v ok=%v, want index 1", m, ok)
		}
	})

	t.Run("code matches", func(t *testing.T) {
		m, ok := BestMatch("rice5", cands, DefaultThreshold)
		if !ok || m.Index != 2 {
			t.Fatalf("BestMatch = %+v ok=%v, want index 2", m, ok)
		}
	})

	t.Run("below threshold rejected", func(t *testing.T) {
		if m, ok := BestMatch("stapler", cands, DefaultThreshold); ok {
			t.Fatalf("BestMatch accepted %+v for unrelated query", m)
		}
	})

	t.Run("tie goes to earliest", func(t *testing.T) {
		dup := []Candidate{
			{Index: 0, Name: "Milk"},
			{Index: 1, Name: "Milk"},
		}
		m, ok := BestMatch("milk", dup, DefaultThreshold)
		if !ok || m.Index != 0 {
			t.Fatalf("BestMatch = %+v ok=%v, want earliest index 0", m, ok)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		if _, ok := BestMatch("milk", nil, DefaultThreshold); ok {
			t.Fatal("BestMatch reported ok on empty candidates")
		}
	})
}
