// Package service contains the in-memory active cart
package service

import (
	"sync"

	"tilltalk/internal/services/cart/domain"
)

// Service defines the service contract for the cart
type Service interface{ domain.ServicePort }

// Svc implements the Service interface. A mutex is enough here: the till
// is single-operator and cart operations are short.
type Svc struct {
	mu    sync.Mutex
	lines []domain.Line
}

// New creates an empty cart
func New() *Svc { return &Svc{} }

// Add merges qty into an existing line or appends a new one
func (s *Svc) Add(line domain.Line) domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == line.ProductID {
			s.lines[i].Qty += line.Qty
			s.lines[i].Price = line.Price
			return s.lines[i]
		}
	}
	s.lines = append(s.lines, line)
	return line
}

// Remove drops the line for productID
func (s *Svc) Remove(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart
func (s *Svc) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the current lines
func (s *Svc) Lines() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total sums price times quantity across lines
func (s *Svc) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var t float64
	for _, l := range s.lines {
		t += l.Total()
	}
	return t
}
