package domain

// ServicePort is the active-cart contract consumed by the gateway.
// The cart is process-local working state for the bill being composed;
// it owns no durable storage.
type ServicePort interface {
	// Add merges qty into an existing line for the product or appends a
	// new line, returning the resulting line.
	Add(line Line) Line

	// Remove drops the line for productID, reporting whether it existed
	Remove(productID int64) bool

	// Clear empties the cart; clearing an empty cart is a valid no-op
	Clear()

	Lines() []Line
	Total() float64
}
