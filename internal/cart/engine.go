// Package cart holds the cart line items of a single shopper and derives
// order totals from them.
package cart

import (
	"math"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

// Engine owns the ordered cart lines. There is at most one line per product
// and every line has a quantity of at least one.
//
// Engine is not safe for concurrent use; the application state serializes access.
type Engine struct {
	lines []domain.CartLine
}

func NewEngine() *Engine {
	return &Engine{}
}

// AddItem increments the line for p, or appends a new line with quantity 1
// holding a snapshot of the product as it is now.
func (e *Engine) AddItem(p domain.Product) {
	if i := e.find(p.ID); i >= 0 {
		e.lines[i].Quantity++
		return
	}
	e.lines = append(e.lines, domain.NewCartLine(p))
}

// UpdateQuantity applies delta to the line for id, clamping at zero. A line
// that reaches zero is removed. Unknown ids are ignored.
func (e *Engine) UpdateQuantity(id string, delta int) {
	i := e.find(id)
	if i < 0 {
		return
	}
	newQuantity := max(0, addSaturating(e.lines[i].Quantity, delta))
	if newQuantity == 0 {
		e.removeAt(i)
		return
	}
	e.lines[i].Quantity = newQuantity
}

// RemoveItem drops the line for id if present.
func (e *Engine) RemoveItem(id string) {
	if i := e.find(id); i >= 0 {
		e.removeAt(i)
	}
}

func (e *Engine) Clear() {
	e.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (e *Engine) Lines() []domain.CartLine {
	result := make([]domain.CartLine, len(e.lines))
	copy(result, e.lines)
	return result
}

// Len is the number of distinct lines.
func (e *Engine) Len() int {
	return len(e.lines)
}

// Count is the total number of units across all lines.
func (e *Engine) Count() int {
	n := 0
	for _, l := range e.lines {
		n += l.Quantity
	}
	return n
}

func (e *Engine) Totals() domain.OrderTotals {
	return domain.ComputeTotals(e.lines)
}

func (e *Engine) find(id string) int {
	for i := range e.lines {
		if e.lines[i].ProductID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) removeAt(i int) {
	e.lines = append(e.lines[:i], e.lines[i+1:]...)
}

// addSaturating returns q+delta, pinned to math.MaxInt instead of wrapping.
// q is always positive, so only the upper bound can overflow.
func addSaturating(q, delta int) int {
	if delta > 0 && q > math.MaxInt-delta {
		return math.MaxInt
	}
	return q + delta
}
