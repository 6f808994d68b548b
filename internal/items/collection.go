// Package items maintains the ordered, mutable sequence of line items being
// edited, together with the local identity allocator.
package items

import (
	"tally/internal/domain"
)

// Allocator hands out local ids for line items. Ids increase monotonically
// and are never reused, even after the item they were assigned to is
// removed. One allocator may be shared by several editors hosted on the
// same form so their ids stay mutually unique.
type Allocator struct {
	next int64
}

// NewAllocator returns an allocator whose first id is 0.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next unused local id.
func (a *Allocator) Next() int64 {
	id := a.next
	a.next++
	return id
}

// Collection is the ordered line-item sequence. All mutation goes through
// its methods; Position is kept equal to the item's index after every
// structural change.
type Collection struct {
	alloc *Allocator
	items []domain.LineItem
}

// NewCollection creates an empty collection drawing ids from alloc.
func NewCollection(alloc *Allocator) *Collection {
	if alloc == nil {
		alloc = NewAllocator()
	}
	return &Collection{alloc: alloc}
}

// Seed replaces the sequence with one row per entry, assigning fresh local
// ids. Used when the hosting document supplies initial rows.
func (c *Collection) Seed(entries []domain.LineItem) {
	c.items = c.items[:0]
	for _, e := range entries {
		c.items = append(c.items, domain.LineItem{
			LocalID:     c.alloc.Next(),
			Description: e.Description,
			Quantity:    e.Quantity,
			Amount:      e.Amount,
		})
	}
	c.renumber()
}

// Add appends an empty row and returns its local id.
func (c *Collection) Add() int64 {
	id := c.alloc.Next()
	c.items = append(c.items, domain.LineItem{LocalID: id})
	c.renumber()
	return id
}

// Update replaces one field on the matching item. No validation is applied;
// numeric parsing is the consumer's concern. Unknown ids are ignored.
func (c *Collection) Update(localID int64, field domain.Field, value string) {
	i := c.IndexOf(localID)
	if i < 0 {
		return
	}
	switch field {
	case domain.FieldDescription:
		c.items[i].Description = value
	case domain.FieldQuantity:
		c.items[i].Quantity = value
	case domain.FieldAmount:
		c.items[i].Amount = value
	}
}

// Remove deletes the matching item. The allocator is untouched, so the id
// is retired permanently. Unknown ids are ignored.
func (c *Collection) Remove(localID int64) {
	i := c.IndexOf(localID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.renumber()
}

// Move swaps the item at index with its neighbor at index+direction.
// Direction must be -1 or +1; anything that would land out of bounds is a
// no-op. This is the "move up/down" affordance, not a general reorder.
func (c *Collection) Move(index, direction int) {
	if direction != -1 && direction != 1 {
		return
	}
	target := index + direction
	if index < 0 || index >= len(c.items) || target < 0 || target >= len(c.items) {
		return
	}
	c.items[index], c.items[target] = c.items[target], c.items[index]
	c.renumber()
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// Items returns the live sequence in order. Callers must treat it as
// read-only; the host reads it between events to compute totals.
func (c *Collection) Items() []domain.LineItem {
	return c.items
}

// At returns the item at index.
func (c *Collection) At(index int) domain.LineItem {
	return c.items[index]
}

// Get returns the item with the given local id.
func (c *Collection) Get(localID int64) (domain.LineItem, bool) {
	i := c.IndexOf(localID)
	if i < 0 {
		return domain.LineItem{}, false
	}
	return c.items[i], true
}

// IndexOf returns the index of the item with the given local id, or -1.
func (c *Collection) IndexOf(localID int64) int {
	for i := range c.items {
		if c.items[i].LocalID == localID {
			return i
		}
	}
	return -1
}

func (c *Collection) renumber() {
	for i := range c.items {
		c.items[i].Position = i
	}
}
