package contracts

import (
	"time"

	"github.com/murkotick/product-catalog-manager/internal/pkg/committer"
)

// JournalRepo is the append-only change journal written on save.
type JournalRepo interface {
	// AppendOp returns the operation that appends entries, or nil when there
	// is nothing to write.
	AppendOp(entries []*JournalEntry) (*committer.Op, error)
}

// JournalEntry is the application-level form of a pending change.
// Usecases are responsible for enriching domain events into this structure.
type JournalEntry struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	CreatedAtUTC time.Time
}
