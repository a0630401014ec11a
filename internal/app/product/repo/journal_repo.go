package repo

import (
	"fmt"

	contracts "github.com/murkotick/product-catalog-manager/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-manager/internal/models/m_journal"
	"github.com/murkotick/product-catalog-manager/internal/pkg/committer"
)

// JournalRepo is the JSON-lines implementation of the change journal.
type JournalRepo struct {
	path string
}

func NewJournalRepo(path string) *JournalRepo {
	return &JournalRepo{path: path}
}

func (r *JournalRepo) AppendOp(entries []*contracts.JournalEntry) (*committer.Op, error) {
	if r == nil || r.path == "" || len(entries) == 0 {
		return nil, nil
	}

	lines := make([]m_journal.Line, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		lines = append(lines, m_journal.BuildLine(
			e.EventID,
			e.EventType,
			e.AggregateID,
			e.PayloadJSON,
			e.CreatedAtUTC,
		))
	}
	data, err := m_journal.EncodeLines(lines)
	if err != nil {
		return nil, fmt.Errorf("encode journal: %w", err)
	}
	return &committer.Op{Path: r.path, Data: data, Append: true}, nil
}
