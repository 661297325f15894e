package models

import "math"

// CartLine is one distinct product entry in a cart. Name is the unique key
// within a cart; Quantity never drops below 1.
type CartLine struct {
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Subtotal returns UnitPrice × Quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Valid reports whether the line is a well-formed cart entry.
func (l CartLine) Valid() bool {
	if l.Name == "" || l.Quantity < 1 {
		return false
	}
	if l.UnitPrice < 0 || math.IsNaN(l.UnitPrice) || math.IsInf(l.UnitPrice, 0) {
		return false
	}
	return true
}

// LinesTotal sums the subtotals of a line sequence.
func LinesTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
