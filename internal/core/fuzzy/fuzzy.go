// Package fuzzy scores approximate matches between free text and short
// candidate strings such as catalog names and product codes.
//
// Scores are normalized edit-distance similarity in [0, 1]. Matching is
// token aware: a query is also scored against every contiguous token
// window of the candidate with the same token count, so "amul milk"
// scores 1.0 against "amul milk 500ml".
package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the acceptance floor used by resolvers that do not
// tune their own. Chosen so a single-letter typo in a four-letter word
// (0.75) still clears it.
const DefaultThreshold = 0.7

// Candidate is one searchable entry. Index is its position in the source
// snapshot; ties on score resolve to the earliest candidate in the slice.
type Candidate struct {
	Index int
	Name  string
	Code  string
}

// Match pairs a candidate index with its winning score
type Match struct {
	Index int
	Score float64
}

// Similarity returns 1 - dist/maxlen over the two strings as given.
// Both empty counts as 1; one empty counts as 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	if max == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(max)
}

// Score rates query against a single candidate string, token aware.
// Inputs are lowercased before comparison.
func Score(query, candidate string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(strings.TrimSpace(candidate))
	if q == "" || c == "" {
		return 0
	}

	best := Similarity(q, c)

	qTokens := strings.Fields(q)
	cTokens := strings.Fields(c)
	if len(qTokens) >= len(cTokens) {
		return best
	}

	// slide a window of len(qTokens) tokens across the candidate
	for i := 0; i+len(qTokens) <= len(cTokens); i++ {
		win := strings.Join(cTokens[i:i+len(qTokens)], " ")
		if s := Similarity(q, win); s > best {
			best = s
		}
	}
	return best
}

// BestMatch returns the highest-scoring candidate at or above threshold.
// Both Name and Code are scored; ok is false when nothing clears the bar.
func BestMatch(query string, cands []Candidate, threshold float64) (Match, bool) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	best := Match{Index: -1}
	for _, c := range cands {
		s := Score(query, c.Name)
		if c.Code != "" {
			if cs := Score(query, c.Code); cs > s {
				s = cs
			}
		}
		if s > best.Score {
			best = Match{Index: c.Index, Score: s}
		}
	}
	if best.Index < 0 || best.Score < threshold {
		return Match{Index: -1}, false
	}
	return best, true
}
