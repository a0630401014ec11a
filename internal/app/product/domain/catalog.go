package domain

import (
	"fmt"
	"time"
)

// Catalog is the in-memory working copy of the catalog file. It owns the
// ordered product list, the suggestion indices derived from it and the events
// raised since the last save. Nothing else holds authoritative product state.
//
// A Catalog is not safe for concurrent use; the entry form drives it from a
// single goroutine.
type Catalog struct {
	products []*Product
	indices  Indices
	events   []DomainEvent
}

// NewCatalog wraps products loaded from disk, keeping their order.
func NewCatalog(products []*Product) *Catalog {
	c := &Catalog{events: make([]DomainEvent, 0)}
	c.Reset(products)
	return c
}

// Reset replaces the whole working copy and drops pending events.
func (c *Catalog) Reset(products []*Product) {
	c.products = append(make([]*Product, 0, len(products)), products...)
	c.events = make([]DomainEvent, 0)
	c.RefreshIndices()
}

// Products returns the products in file/insertion order. The slice is a copy;
// the products themselves are immutable.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Find returns the product with the given id or ErrProductNotFound.
func (c *Catalog) Find(id int64) (*Product, error) {
	if i := c.indexOf(id); i >= 0 {
		return c.products[i], nil
	}
	return nil, ErrProductNotFound
}

// NextID returns the id a product created now would receive.
func (c *Catalog) NextID() int64 {
	return NextID(c.products)
}

// Indices returns the current category and boutique sets.
func (c *Catalog) Indices() Indices {
	return c.indices
}

// RefreshIndices recomputes the category and boutique sets from the records.
func (c *Catalog) RefreshIndices() {
	c.indices = ExtractIndices(c.products)
}

// Add appends a new product. The id and slug must not be in use yet.
func (c *Catalog) Add(p *Product, now time.Time) error {
	if c.indexOf(p.ID()) >= 0 {
		return fmt.Errorf("add product %d: %w", p.ID(), ErrDuplicateProductID)
	}
	if SlugTaken(c.products, p.Slug(), nil) {
		return &ValidationError{Field: FieldSlug, Value: p.Slug(), Err: ErrSlugTaken}
	}

	c.products = append(c.products, p)
	c.RefreshIndices()

	c.events = append(c.events, &ProductCreatedEvent{
		ProductID: p.ID(),
		Slug:      p.Slug(),
		Title:     p.Title(),
		Category:  p.Category(),
		Price:     p.Price(),
		CreatedAt: now,
	})
	return nil
}

// Replace swaps the product with the same id, keeping its position. An
// update event is recorded only when at least one field changed.
func (c *Catalog) Replace(p *Product, now time.Time) error {
	i := c.indexOf(p.ID())
	if i < 0 {
		return fmt.Errorf("replace product %d: %w", p.ID(), ErrProductNotFound)
	}
	if SlugTaken(c.products, p.Slug(), Excluding(p.ID())) {
		return &ValidationError{Field: FieldSlug, Value: p.Slug(), Err: ErrSlugTaken}
	}

	changes := TrackChanges(c.products[i], p)
	c.products[i] = p
	c.RefreshIndices()

	if changes.HasChanges() {
		c.events = append(c.events, &ProductUpdatedEvent{
			ProductID: p.ID(),
			UpdatedAt: now,
			Changes:   changes.Changes(),
		})
	}
	return nil
}

// Remove filters out every product with the given id (a hand-edited file may
// hold duplicates). Unknown ids are a no-op; the return value reports whether
// anything was removed.
func (c *Catalog) Remove(id int64, now time.Time) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	removed := c.products[i]

	kept := make([]*Product, 0, len(c.products)-1)
	for _, p := range c.products {
		if p.ID() != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	c.RefreshIndices()

	c.events = append(c.events, &ProductDeletedEvent{
		ProductID: id,
		Slug:      removed.Slug(),
		DeletedAt: now,
	})
	return true
}

// DomainEvents returns the events raised since the last save.
func (c *Catalog) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(c.events))
	copy(out, c.events)
	return out
}

// HasChanges reports whether the working copy differs from what was last
// loaded or saved.
func (c *Catalog) HasChanges() bool {
	return len(c.events) > 0
}

// ClearEvents clears the accumulated domain events.
// Should be called after the catalog has been written.
func (c *Catalog) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

func (c *Catalog) indexOf(id int64) int {
	for i, p := range c.products {
		if p.ID() == id {
			return i
		}
	}
	return -1
}
