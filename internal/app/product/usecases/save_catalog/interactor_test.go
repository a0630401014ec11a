package save_catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/app/product/repo"
	"github.com/murkotick/product-catalog-manager/internal/pkg/clock"
	"github.com/murkotick/product-catalog-manager/internal/pkg/committer"
)

// recordingCommitter keeps the last plan instead of touching the disk.
type recordingCommitter struct {
	plan *committer.Plan
	err  error
}

func (c *recordingCommitter) Apply(_ context.Context, plan *committer.Plan) error {
	c.plan = plan
	return c.err
}

var at = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func dirtyCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c := domain.NewCatalog(nil)
	p, err := domain.NewProduct(1, domain.Details{Slug: "a", Title: "A", Price: 1})
	require.NoError(t, err)
	require.NoError(t, c.Add(p, at))
	require.True(t, c.Remove(1, at))
	return c
}

func TestExecute_BuildsCatalogAndJournalOps(t *testing.T) {
	c := dirtyCatalog(t)
	cm := &recordingCommitter{}
	it := NewInteractor(c, repo.NewProductRepo("produits.json", nil), repo.NewJournalRepo("journal.jsonl"), cm, clock.NewFake(at))

	require.NoError(t, it.Execute(context.Background()))

	require.NotNil(t, cm.plan)
	ops := cm.plan.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, "produits.json", ops[0].Path)
	assert.False(t, ops[0].Append)
	assert.Equal(t, "[]", string(ops[0].Data))
	assert.Equal(t, "journal.jsonl", ops[1].Path)
	assert.True(t, ops[1].Append)
	assert.Contains(t, string(ops[1].Data), `"event_type":"product.created"`)
	assert.Contains(t, string(ops[1].Data), `"event_type":"product.deleted"`)

	assert.False(t, c.HasChanges())
}

func TestExecute_WithoutJournal(t *testing.T) {
	c := dirtyCatalog(t)
	cm := &recordingCommitter{}
	it := NewInteractor(c, repo.NewProductRepo("produits.json", nil), nil, cm, clock.NewFake(at))

	require.NoError(t, it.Execute(context.Background()))
	assert.Len(t, cm.plan.Ops(), 1)
}

// TestExecute_FailureKeepsPendingChanges verifies a failed write can be retried.
func TestExecute_FailureKeepsPendingChanges(t *testing.T) {
	c := dirtyCatalog(t)
	boom := errors.New("disk full")
	cm := &recordingCommitter{err: boom}
	it := NewInteractor(c, repo.NewProductRepo("produits.json", nil), nil, cm, clock.NewFake(at))

	err := it.Execute(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, c.HasChanges())
	assert.Len(t, c.DomainEvents(), 2)
}
