package m_journal

import (
	"bytes"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/murkotick/product-catalog-manager/internal/pkg/codec"
)

// Line is one entry of the change journal, written as a single JSON line.
type Line struct {
	EventID     string              `json:"event_id"`
	EventType   string              `json:"event_type"`
	AggregateID string              `json:"aggregate_id"`
	Payload     jsoniter.RawMessage `json:"payload"`
	CreatedAt   time.Time           `json:"created_at"`
}

// BuildLine constructs a journal line. payload must already be valid JSON.
func BuildLine(eventID, eventType, aggregateID, payload string, createdAt time.Time) Line {
	return Line{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     jsoniter.RawMessage(payload),
		CreatedAt:   createdAt.UTC(),
	}
}

// EncodeLines renders lines as newline-terminated JSON.
func EncodeLines(lines []Line) ([]byte, error) {
	var buf bytes.Buffer
	for _, l := range lines {
		b, err := codec.JSON.Marshal(l)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
