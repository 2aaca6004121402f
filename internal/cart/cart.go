// Package cart tracks the line items a customer has picked during one
// ordering session.
package cart

import (
	"github.com/shopspring/decimal"
)

// LineKind distinguishes subscription plans from regular services and
// add-on extras.
type LineKind string

const (
	KindPlan    LineKind = "plan"
	KindExtra   LineKind = "extra"
	KindService LineKind = "service"
)

// Line is one cart entry. Price is a snapshot taken when the item was
// added; catalog edits after that point don't touch the cart.
type Line struct {
	Kind      LineKind        `json:"kind"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ServiceID string          `json:"serviceId"`
}

// Item is what gets added: a line without a quantity.
type Item struct {
	Kind      LineKind
	Name      string
	Price     decimal.Decimal
	ServiceID string
}

// Cart holds the selected lines in pick order. The zero value is usable.
type Cart struct {
	lines []Line
}

// Add puts one unit of the item in the cart. An existing line with the same
// name gains a unit. A new plan evicts any previously selected plan: at most
// one plan line may exist at a time.
func (c *Cart) Add(item Item) {
	for i := range c.lines {
		if c.lines[i].Name == item.Name {
			c.lines[i].Quantity++
			return
		}
	}
	if item.Kind == KindPlan {
		c.removeKind(KindPlan)
	}
	c.lines = append(c.lines, Line{
		Kind:      item.Kind,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  1,
		ServiceID: item.ServiceID,
	})
}

// UpdateQuantity sets the named line's quantity. Zero or below removes the
// line. Updating an absent line is a no-op.
func (c *Cart) UpdateQuantity(name string, quantity int) {
	if quantity <= 0 {
		c.Remove(name)
		return
	}
	for i := range c.lines {
		if c.lines[i].Name == name {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the named line unconditionally.
func (c *Cart) Remove(name string) {
	for i := range c.lines {
		if c.lines[i].Name == name {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Quantity reports the named line's quantity, zero if absent.
func (c *Cart) Quantity(name string) int {
	for _, l := range c.lines {
		if l.Name == name {
			return l.Quantity
		}
	}
	return 0
}

// Total recomputes the sum of price times quantity on every call. There is
// no cached total to go stale.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Lines returns a copy of the current lines in pick order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports how many distinct lines are in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) removeKind(kind LineKind) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.Kind != kind {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}
