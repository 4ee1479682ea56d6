// Package domain holds the alias vocabulary types and contracts
package domain

// Pair is one learned mapping from spoken word to canonical term.
// Both sides are stored lowercase.
type Pair struct {
	Alias  string `json:"alias" validate:"required,min=1,max=100"`
	Target string `json:"target" validate:"required,min=1,max=100"`
}

// RemoveInput names the alias to forget
type RemoveInput struct {
	Alias string `json:"alias" validate:"required,min=1,max=100"`
}
