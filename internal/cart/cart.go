// Package cart implements the client side of the shopping workflow: the
// in-memory cart model, its local persistence, the stored session and the
// REST client the cart talks to at checkout.
package cart

import (
	"sync"

	"book-commerce-platform/internal/models"
)

// Model is the mutable cart owned by a UI session. All mutations notify the
// registered observers with a fresh snapshot; persistence and rendering
// subscribe independently.
type Model struct {
	mu        sync.Mutex
	lines     []models.CartLine
	listeners []func([]models.CartLine)
}

// NewModel creates an empty cart.
func NewModel() *Model {
	return &Model{}
}

// OnChange registers an observer invoked after every mutation with a
// snapshot of the cart. Observers run synchronously on the mutating
// goroutine, outside the model's lock.
func (m *Model) OnChange(fn func([]models.CartLine)) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// AddItem adds one unit of the named product. An existing line with the
// same name has its quantity incremented; otherwise a new line with
// quantity 1 is appended, preserving insertion order.
func (m *Model) AddItem(name string, unitPrice float64) {
	m.mu.Lock()
	found := false
	for i := range m.lines {
		if m.lines[i].Name == name {
			m.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		m.lines = append(m.lines, models.CartLine{Name: name, UnitPrice: unitPrice, Quantity: 1})
	}
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
}

// RemoveItem deletes the line at index.
func (m *Model) RemoveItem(index int) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.lines) {
		m.mu.Unlock()
		return models.ErrIndexOutOfRange
	}
	m.lines = append(m.lines[:index], m.lines[index+1:]...)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// ChangeQuantity adds delta to the line's quantity, clamping the result to
// a minimum of 1. Removal is RemoveItem, never quantity-to-zero.
func (m *Model) ChangeQuantity(index, delta int) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.lines) {
		m.mu.Unlock()
		return models.ErrIndexOutOfRange
	}
	m.lines[index].Quantity += delta
	if m.lines[index].Quantity < 1 {
		m.lines[index].Quantity = 1
	}
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// Total returns the sum of unit price × quantity over all lines.
func (m *Model) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.LinesTotal(m.lines)
}

// Len returns the number of distinct lines.
func (m *Model) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}

// Snapshot returns an independent copy of the current lines for handoff to
// checkout.
func (m *Model) Snapshot() []models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Restore replaces the cart's contents with a previously persisted
// snapshot. Used at startup.
func (m *Model) Restore(lines []models.CartLine) {
	m.mu.Lock()
	m.lines = make([]models.CartLine, len(lines))
	copy(m.lines, lines)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
}

// Clear empties the cart. Called by the checkout caller after a success
// result.
func (m *Model) Clear() {
	m.mu.Lock()
	m.lines = nil
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
}

func (m *Model) snapshotLocked() []models.CartLine {
	out := make([]models.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

func (m *Model) notify(snapshot []models.CartLine) {
	m.mu.Lock()
	listeners := make([]func([]models.CartLine), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
