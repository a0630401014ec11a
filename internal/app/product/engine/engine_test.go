package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/app/product/repo"
	"github.com/murkotick/product-catalog-manager/internal/pkg/clock"
	"github.com/murkotick/product-catalog-manager/internal/pkg/committer"
)

type harness struct {
	engine      *Engine
	catalogPath string
	journalPath string
	clk         *clock.FakeClock
}

func newHarness(t *testing.T, content string) *harness {
	t.Helper()
	dir := t.TempDir()
	h := &harness{
		catalogPath: filepath.Join(dir, "data", "produits.json"),
		journalPath: filepath.Join(dir, "journal.jsonl"),
		clk:         clock.NewTicking(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), time.Second),
	}
	if content != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(h.catalogPath), 0o755))
		require.NoError(t, os.WriteFile(h.catalogPath, []byte(content), 0o644))
	}
	h.engine = New(Deps{
		Store:   repo.NewProductRepo(h.catalogPath, zap.NewNop()),
		Journal: repo.NewJournalRepo(h.journalPath),
		Clock:   h.clk,
		Logger:  zap.NewNop(),
	})
	h.engine.Load()
	return h
}

func redMug() domain.Fields {
	return domain.Fields{Title: "Red Mug", Category: "Kitchen", Price: "12.5", Stock: "3", Rating: "4.5"}
}

func TestProductCreationFlow(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()

	p, err := h.engine.Create(redMug())
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID())
	assert.Equal(t, "red-mug", p.Slug())
	assert.Nil(t, p.PriceBoutique())
	assert.Nil(t, p.OldPrice())
	assert.Equal(t, []string{"Kitchen"}, h.engine.Categories())
	assert.True(t, h.engine.HasUnsavedChanges())

	require.NoError(t, h.engine.Save(ctx))
	assert.False(t, h.engine.HasUnsavedChanges())

	// A fresh engine on the same file sees the same product.
	reloaded := New(Deps{Store: repo.NewProductRepo(h.catalogPath, nil)})
	require.Equal(t, 1, reloaded.Load())
	got, err := reloaded.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, p.Details(), got.Details())

	events := mustReadJournal(t, h.journalPath)
	require.Len(t, events, 1)
	assert.Equal(t, "product.created", events[0].EventType)
	assert.Equal(t, "1", events[0].AggregateID)
	assert.Equal(t, "red-mug", events[0].Payload["slug"])
	_, err = uuid.Parse(events[0].EventID)
	assert.NoError(t, err)
}

func TestValidationRejection(t *testing.T) {
	h := newHarness(t, "")

	fields := redMug()
	fields.Price = "abc"
	_, err := h.engine.Create(fields)

	assert.ErrorIs(t, err, domain.ErrPriceNotNumeric)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, h.engine.List())
	assert.False(t, h.engine.HasUnsavedChanges())
}

func TestIDAllocationAfterDelete(t *testing.T) {
	h := newHarness(t, `[
  {"id": 1, "slug": "a", "title": "A", "category": "Kitchen", "boutique": "Paris", "price": 1},
  {"id": 3, "slug": "b", "title": "B", "category": "Garden", "boutique": "Lyon", "price": 2}
]`)

	assert.Equal(t, int64(4), h.engine.NextID())

	assert.True(t, h.engine.Delete(3))
	assert.Equal(t, int64(2), h.engine.NextID())
	assert.Equal(t, []string{"Kitchen"}, h.engine.Categories())
	assert.Equal(t, []string{"Paris"}, h.engine.Boutiques())

	assert.False(t, h.engine.Delete(3))

	h.engine.RefreshIndices()
	assert.Equal(t, []string{"Kitchen"}, h.engine.Categories())
}

func TestCreateRejectsSlugOfZeroIDRecord(t *testing.T) {
	h := newHarness(t, `[{"id": 0, "slug": "red-mug", "title": "Old Mug", "price": 1}]`)

	_, err := h.engine.Create(redMug())
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
	assert.Len(t, h.engine.List(), 1)
	assert.False(t, h.engine.HasUnsavedChanges())

	fields := redMug()
	fields.Slug = "red-mug-2"
	p, err := h.engine.Create(fields)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID())
}

func TestNewIndexValuesAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := New(Deps{
		Store:  repo.NewProductRepo(filepath.Join(t.TempDir(), "produits.json"), nil),
		Logger: zap.New(core),
	})
	e.Load()

	p, err := e.Create(redMug())
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("new category").Len())
	assert.Zero(t, logs.FilterMessage("new boutique").Len())

	fields := domain.FieldsFromProduct(p)
	fields.Boutique = "Paris"
	_, err = e.Update(p.ID(), fields)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("new category").Len())
	assert.Equal(t, 1, logs.FilterMessage("new boutique").Len())

	other := redMug()
	other.Slug = "red-mug-2"
	other.Boutique = "Paris"
	_, err = e.Create(other)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("new category").Len())
	assert.Equal(t, 1, logs.FilterMessage("new boutique").Len())
}

func TestUpdateFlow(t *testing.T) {
	h := newHarness(t, `[
  {"id": 1, "slug": "a", "title": "A", "price": 1, "stock": 1, "rating": 1},
  {"id": 2, "slug": "b", "title": "B", "price": 2, "stock": 2, "rating": 2}
]`)
	ctx := context.Background()

	current, err := h.engine.FindByID(1)
	require.NoError(t, err)
	fields := domain.FieldsFromProduct(current)
	fields.Stock = "10"

	_, err = h.engine.Update(1, fields)
	require.NoError(t, err)
	require.NoError(t, h.engine.Save(ctx))

	products := h.engine.List()
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID())
	assert.Equal(t, 10, products[0].Stock())

	events := mustReadJournal(t, h.journalPath)
	require.Len(t, events, 1)
	assert.Equal(t, "product.updated", events[0].EventType)
	changes := events[0].Payload["changes"].(map[string]interface{})
	assert.Equal(t, 10.0, changes["stock"])

	_, err = h.engine.Update(42, fields)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestImagePathsNormalized(t *testing.T) {
	h := newHarness(t, "")

	fields := redMug()
	fields.AddImages(`img\mug.png`)
	assert.Equal(t, 0, fields.AddImages("img/mug.png"))

	p, err := h.engine.Create(fields)
	require.NoError(t, err)
	assert.Equal(t, []string{"img/mug.png"}, p.Images())
}

func TestLoadNormalizesBackslashes(t *testing.T) {
	h := newHarness(t, `[{"id": 1, "slug": "a", "title": "A", "images": ["img\\a.png"]}]`)
	require.NoError(t, h.engine.Save(context.Background()))

	data, err := os.ReadFile(h.catalogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"img/a.png"`)
	assert.NotContains(t, string(data), `\\`)
}

func TestRows(t *testing.T) {
	h := newHarness(t, `[{"id": 1, "slug": "a", "title": "A", "price": 3, "priceBoutique": 2.5, "stock": 4}]`)

	rows := h.engine.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "3.00", rows[0].Price)
	assert.Equal(t, "2.5", rows[0].PriceBoutique)
	assert.Equal(t, "", rows[0].OldPrice)
	assert.Equal(t, 4, rows[0].Stock)
}

type failingCommitter struct{ err error }

func (f failingCommitter) Apply(context.Context, *committer.Plan) error { return f.err }

// TestSaveFailureKeepsWorkingCopy verifies a failed save leaves both memory
// and disk untouched so the user can retry.
func TestSaveFailureKeepsWorkingCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produits.json")
	boom := errors.New("read-only file system")
	e := New(Deps{
		Store:     repo.NewProductRepo(path, nil),
		Committer: failingCommitter{err: boom},
	})
	e.Load()

	_, err := e.Create(redMug())
	require.NoError(t, err)

	err = e.Save(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, e.HasUnsavedChanges())
	assert.Len(t, e.PendingChanges(), 1)
	assert.Len(t, e.List(), 1)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveRoundTripIsStable(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()

	fields := redMug()
	fields.Title = "Crème brûlée"
	fields.OldPrice = "15"
	fields.ImportFeatures("Vegan\nSans gluten")
	_, err := h.engine.Create(fields)
	require.NoError(t, err)
	require.NoError(t, h.engine.Save(ctx))

	first, err := os.ReadFile(h.catalogPath)
	require.NoError(t, err)

	h.engine.Load()
	require.NoError(t, h.engine.Save(ctx))
	second, err := os.ReadFile(h.catalogPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), "Crème brûlée")
}

func TestCreateThenReuseFreedMaximum(t *testing.T) {
	h := newHarness(t, `[{"id": 1, "slug": "a", "title": "A"}, {"id": 3, "slug": "b", "title": "B"}]`)
	fields := func(title string) domain.Fields {
		return domain.Fields{Title: title, Price: "9.99", Stock: "5", Rating: "4.5"}
	}

	p, err := h.engine.Create(fields("C"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID())

	require.True(t, h.engine.Delete(4))
	require.True(t, h.engine.Delete(3))

	p, err = h.engine.Create(fields("D"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID())
}

func TestRejectedCreateKeepsSingleRecord(t *testing.T) {
	h := newHarness(t, `[{"id": 1, "slug": "a", "title": "A"}]`)

	_, err := h.engine.Create(domain.Fields{Title: "X", Price: "bad", Stock: "1", Rating: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price not numeric")
	assert.Len(t, h.engine.List(), 1)
}
