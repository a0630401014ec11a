package engine

import (
	"bufio"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-catalog-manager/internal/pkg/codec"
)

type journalEvent struct {
	EventID     string                 `json:"event_id"`
	EventType   string                 `json:"event_type"`
	AggregateID string                 `json:"aggregate_id"`
	Payload     map[string]interface{} `json:"payload"`
	CreatedAt   time.Time              `json:"created_at"`
}

func mustReadJournal(t *testing.T, path string) []journalEvent {
	t.Helper()
	items, err := readJournal(path)
	require.NoError(t, err)
	return items
}

func readJournal(path string) ([]journalEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make([]journalEvent, 0)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e journalEvent
		if err := codec.JSON.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, sc.Err()
}
