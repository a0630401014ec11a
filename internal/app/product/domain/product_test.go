package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(1, Details{
		Slug:     " red-mug ",
		Title:    " Red Mug ",
		Category: " Kitchen ",
		Price:    10,
		Images:   []string{`img\a.png`, "img/a.png", "img/b.png"},
		Features: []string{"x", "x", "y"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID())
	assert.Equal(t, "red-mug", p.Slug())
	assert.Equal(t, "Red Mug", p.Title())
	assert.Equal(t, "Kitchen", p.Category())
	assert.Equal(t, []string{"img/a.png", "img/b.png"}, p.Images())
	assert.Equal(t, []string{"x", "y"}, p.Features())
	assert.Nil(t, p.PriceBoutique())
	assert.Nil(t, p.OldPrice())
}

func TestNewProduct_Invalid(t *testing.T) {
	_, err := NewProduct(0, Details{Slug: "a", Title: "A"})
	assert.ErrorIs(t, err, ErrInvalidProductID)

	_, err = NewProduct(1, Details{Slug: "a", Title: " "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = NewProduct(1, Details{Slug: "", Title: "A"})
	assert.ErrorIs(t, err, ErrSlugRequired)
}

// TestProduct_GettersCopy verifies callers cannot mutate a product through its getters.
func TestProduct_GettersCopy(t *testing.T) {
	price := 5.0
	p, err := NewProduct(1, Details{Slug: "a", Title: "A", PriceBoutique: &price, Images: []string{"x"}})
	require.NoError(t, err)

	price = 99
	*p.PriceBoutique() = 42
	p.Images()[0] = "changed"

	assert.Equal(t, 5.0, *p.PriceBoutique())
	assert.Equal(t, []string{"x"}, p.Images())
}

func TestReconstructProduct_NormalizesImagesOnly(t *testing.T) {
	p := ReconstructProduct(9, Details{
		Slug:   "  as-stored ",
		Title:  "T",
		Images: []string{`a\b.png`, "a/b.png"},
	})
	assert.Equal(t, "  as-stored ", p.Slug())
	assert.Equal(t, []string{"a/b.png", "a/b.png"}, p.Images())
}

func TestTrackChanges(t *testing.T) {
	old := 20.0
	before := ReconstructProduct(1, Details{Slug: "a", Title: "A", Price: 10, Stock: 1})
	after := ReconstructProduct(1, Details{Slug: "a", Title: "A2", Price: 10, Stock: 1, OldPrice: &old, Features: []string{"f"}})

	ct := TrackChanges(before, after)
	assert.True(t, ct.HasChanges())
	assert.Equal(t, []string{FieldFeatures, FieldOldPrice, FieldTitle}, ct.DirtyFields())
	assert.Equal(t, "A2", ct.Changes()[FieldTitle])
	assert.True(t, ct.Dirty(FieldOldPrice))
	assert.False(t, ct.Dirty(FieldPrice))
	assert.Equal(t, 3, ct.Count())

	assert.False(t, TrackChanges(before, before).HasChanges())
}
