package domain

import (
	"strconv"
	"time"
)

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the catalog
// since it was last saved.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductCreatedEvent is raised when a new product is added.
type ProductCreatedEvent struct {
	ProductID int64
	Slug      string
	Title     string
	Category  string
	Price     float64
	CreatedAt time.Time
}

func (e *ProductCreatedEvent) EventType() string {
	return "product.created"
}

func (e *ProductCreatedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (e *ProductCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// ProductUpdatedEvent is raised when a product is replaced with different values.
type ProductUpdatedEvent struct {
	ProductID int64
	UpdatedAt time.Time
	Changes   map[string]interface{} // Map of field name to new value
}

func (e *ProductUpdatedEvent) EventType() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (e *ProductUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// ProductDeletedEvent is raised when a product is removed from the catalog.
type ProductDeletedEvent struct {
	ProductID int64
	Slug      string
	DeletedAt time.Time
}

func (e *ProductDeletedEvent) EventType() string {
	return "product.deleted"
}

func (e *ProductDeletedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (e *ProductDeletedEvent) OccurredAt() time.Time {
	return e.DeletedAt
}
