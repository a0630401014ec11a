package m_journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLines(t *testing.T) {
	at := time.Date(2026, 3, 1, 11, 0, 0, 0, time.FixedZone("CET", 3600))
	lines := []Line{
		BuildLine("e1", "product.created", "1", `{"slug":"a"}`, at),
		BuildLine("e2", "product.deleted", "1", `{}`, at),
	}

	data, err := EncodeLines(lines)
	require.NoError(t, err)
	assert.Equal(t,
		`{"event_id":"e1","event_type":"product.created","aggregate_id":"1","payload":{"slug":"a"},"created_at":"2026-03-01T10:00:00Z"}`+"\n"+
			`{"event_id":"e2","event_type":"product.deleted","aggregate_id":"1","payload":{},"created_at":"2026-03-01T10:00:00Z"}`+"\n",
		string(data))
}

func TestEncodeLines_Keys(t *testing.T) {
	data, err := EncodeLines([]Line{BuildLine("e", "product.created", "1", "{}", time.Unix(0, 0))})
	require.NoError(t, err)
	for _, key := range []string{KeyEventID, KeyEventType, KeyAggregateID, KeyPayload, KeyCreatedAt} {
		assert.Contains(t, string(data), `"`+key+`":`)
	}
}

func TestEncodeLines_Empty(t *testing.T) {
	data, err := EncodeLines(nil)
	require.NoError(t, err)
	assert.Empty(t, data)
}
