package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_AddImages_NormalizesAndDedupes(t *testing.T) {
	var f Fields

	added := f.AddImages(`img\a.png`, "img/a.png", "", "img/b.png")
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"img/a.png", "img/b.png"}, f.Images)

	assert.Equal(t, 0, f.AddImages(`img\b.png`))
	assert.Len(t, f.Images, 2)
}

func TestFields_RemoveAndClear(t *testing.T) {
	f := Fields{
		Images:   []string{"a", "b", "c"},
		Features: []string{"x", "y"},
	}

	assert.True(t, f.RemoveImage(1))
	assert.Equal(t, []string{"a", "c"}, f.Images)
	assert.False(t, f.RemoveImage(5))
	assert.False(t, f.RemoveImage(-1))

	assert.True(t, f.RemoveFeature(0))
	assert.Equal(t, []string{"y"}, f.Features)
	assert.False(t, f.RemoveFeature(1))

	f.ClearImages()
	f.ClearFeatures()
	assert.Empty(t, f.Images)
	assert.Empty(t, f.Features)
}

// TestFields_ImportFeatures verifies the multi-line import: one feature per
// line, trimmed, blanks and duplicates skipped.
func TestFields_ImportFeatures(t *testing.T) {
	f := Fields{Features: []string{"Dishwasher safe"}}

	added := f.ImportFeatures("  350 ml \r\n\r\nDishwasher safe\nMade in France\n350 ml\n")
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"Dishwasher safe", "350 ml", "Made in France"}, f.Features)

	assert.Equal(t, 0, f.ImportFeatures("\n  \n"))
}

func TestFieldsFromProduct(t *testing.T) {
	zero := 0.0
	p, err := NewProduct(3, Details{
		Slug:          "mug",
		Title:         "Mug",
		Price:         12.5,
		PriceBoutique: &zero,
		Stock:         4,
		Rating:        4,
		Images:        []string{"a.png"},
		Features:      []string{"f"},
	})
	require.NoError(t, err)

	f := FieldsFromProduct(p)
	assert.Equal(t, "Mug", f.Title)
	assert.Equal(t, "mug", f.Slug)
	assert.Equal(t, "12.5", f.Price)
	assert.Equal(t, "0", f.PriceBoutique)
	assert.Equal(t, "", f.OldPrice)
	assert.Equal(t, "4", f.Stock)
	assert.Equal(t, "4", f.Rating)
	assert.Equal(t, []string{"a.png"}, f.Images)
	assert.Equal(t, []string{"f"}, f.Features)

	// Round trip through the validator gives back the same details.
	d, err := NewValidator().Validate(f, []*Product{p}, Excluding(p.ID()))
	require.NoError(t, err)
	assert.Equal(t, p.Details(), d)
}
