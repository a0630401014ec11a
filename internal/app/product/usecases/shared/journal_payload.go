package shared

import (
	"fmt"

	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/pkg/codec"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the journal.
//
// The domain layer avoids serialization concerns; this adapter picks the
// primitives worth keeping for each event type.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"slug":        e.Slug,
			"title":       e.Title,
			"category":    e.Category,
			"price":       e.Price,
			"occurred_at": e.OccurredAt(),
		}

	case *domain.ProductUpdatedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"changes":     e.Changes,
			"occurred_at": e.OccurredAt(),
		}

	case *domain.ProductDeletedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"slug":        e.Slug,
			"occurred_at": e.OccurredAt(),
		}

	default:
		// Fallback: try to marshal the event directly.
		b, err := codec.JSON.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal journal payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	b, err := codec.JSON.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal journal payload for %s: %w", ev.EventType(), err)
	}
	return string(b), nil
}
