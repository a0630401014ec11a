package domain

import (
	"strings"
)

// Field names, as they appear in the catalog file. Used for validation
// reports and change tracking.
const (
	FieldID            = "id"
	FieldSlug          = "slug"
	FieldTitle         = "title"
	FieldShort         = "short"
	FieldCategory      = "category"
	FieldBoutique      = "boutique"
	FieldPrice         = "price"
	FieldPriceBoutique = "priceBoutique"
	FieldOldPrice      = "oldPrice"
	FieldStock         = "stock"
	FieldRating        = "rating"
	FieldImages        = "images"
	FieldFeatures      = "features"
	FieldDescription   = "description"
)

// Details carries every product attribute except the id, already parsed.
// Optional prices are nil when absent.
type Details struct {
	Slug          string
	Title         string
	Short         string
	Category      string
	Boutique      string
	Price         float64
	PriceBoutique *float64
	OldPrice      *float64
	Stock         int
	Rating        float64
	Images        []string
	Features      []string
	Description   string
}

// Product is a catalog record. It is immutable once built: the catalog
// replaces whole records on update, it never edits them in place.
type Product struct {
	id            int64
	slug          string
	title         string
	short         string
	category      string
	boutique      string
	price         float64
	priceBoutique *float64
	oldPrice      *float64
	stock         int
	rating        float64
	images        []string
	features      []string
	description   string
}

// NewProduct builds a product from validated details. Text fields are
// trimmed, image paths normalized and both lists de-duplicated in insertion order.
func NewProduct(id int64, d Details) (*Product, error) {
	if id < 1 {
		return nil, ErrInvalidProductID
	}
	if strings.TrimSpace(d.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(d.Slug) == "" {
		return nil, ErrSlugRequired
	}

	images, _ := appendUnique(make([]string, 0, len(d.Images)), NormalizePaths(d.Images)...)
	features, _ := appendUnique(make([]string, 0, len(d.Features)), d.Features...)

	return &Product{
		id:            id,
		slug:          strings.TrimSpace(d.Slug),
		title:         strings.TrimSpace(d.Title),
		short:         strings.TrimSpace(d.Short),
		category:      strings.TrimSpace(d.Category),
		boutique:      strings.TrimSpace(d.Boutique),
		price:         d.Price,
		priceBoutique: copyFloat(d.PriceBoutique),
		oldPrice:      copyFloat(d.OldPrice),
		stock:         d.Stock,
		rating:        d.Rating,
		images:        images,
		features:      features,
		description:   strings.TrimSpace(d.Description),
	}, nil
}

// ReconstructProduct rebuilds a product from persisted state.
// Used by the store when loading the catalog file: values are taken as
// stored, only image separators are normalized.
func ReconstructProduct(id int64, d Details) *Product {
	features := make([]string, len(d.Features))
	copy(features, d.Features)

	return &Product{
		id:            id,
		slug:          d.Slug,
		title:         d.Title,
		short:         d.Short,
		category:      d.Category,
		boutique:      d.Boutique,
		price:         d.Price,
		priceBoutique: copyFloat(d.PriceBoutique),
		oldPrice:      copyFloat(d.OldPrice),
		stock:         d.Stock,
		rating:        d.Rating,
		images:        NormalizePaths(d.Images),
		features:      features,
		description:   d.Description,
	}
}

// Getters

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Slug() string {
	return p.slug
}

func (p *Product) Title() string {
	return p.title
}

func (p *Product) Short() string {
	return p.short
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) Boutique() string {
	return p.boutique
}

func (p *Product) Price() float64 {
	return p.price
}

// PriceBoutique returns a copy of the in-store price, or nil when unset.
func (p *Product) PriceBoutique() *float64 {
	return copyFloat(p.priceBoutique)
}

// OldPrice returns a copy of the previous price, or nil when unset.
func (p *Product) OldPrice() *float64 {
	return copyFloat(p.oldPrice)
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) Rating() float64 {
	return p.rating
}

// Images returns a copy of the image paths.
func (p *Product) Images() []string {
	out := make([]string, len(p.images))
	copy(out, p.images)
	return out
}

// Features returns a copy of the feature list.
func (p *Product) Features() []string {
	out := make([]string, len(p.features))
	copy(out, p.features)
	return out
}

func (p *Product) Description() string {
	return p.description
}

// Details returns a copy of every attribute except the id.
func (p *Product) Details() Details {
	return Details{
		Slug:          p.slug,
		Title:         p.title,
		Short:         p.short,
		Category:      p.category,
		Boutique:      p.boutique,
		Price:         p.price,
		PriceBoutique: p.PriceBoutique(),
		OldPrice:      p.OldPrice(),
		Stock:         p.stock,
		Rating:        p.rating,
		Images:        p.Images(),
		Features:      p.Features(),
		Description:   p.description,
	}
}

// TrackChanges compares two versions of a product and marks every field
// whose value differs, recording the new value.
func TrackChanges(before, after *Product) *ChangeTracker {
	ct := NewChangeTracker()
	if before.slug != after.slug {
		ct.MarkDirty(FieldSlug, after.slug)
	}
	if before.title != after.title {
		ct.MarkDirty(FieldTitle, after.title)
	}
	if before.short != after.short {
		ct.MarkDirty(FieldShort, after.short)
	}
	if before.category != after.category {
		ct.MarkDirty(FieldCategory, after.category)
	}
	if before.boutique != after.boutique {
		ct.MarkDirty(FieldBoutique, after.boutique)
	}
	if before.price != after.price {
		ct.MarkDirty(FieldPrice, after.price)
	}
	if !equalFloatPtr(before.priceBoutique, after.priceBoutique) {
		ct.MarkDirty(FieldPriceBoutique, after.PriceBoutique())
	}
	if !equalFloatPtr(before.oldPrice, after.oldPrice) {
		ct.MarkDirty(FieldOldPrice, after.OldPrice())
	}
	if before.stock != after.stock {
		ct.MarkDirty(FieldStock, after.stock)
	}
	if before.rating != after.rating {
		ct.MarkDirty(FieldRating, after.rating)
	}
	if !equalStrings(before.images, after.images) {
		ct.MarkDirty(FieldImages, after.Images())
	}
	if !equalStrings(before.features, after.features) {
		ct.MarkDirty(FieldFeatures, after.Features())
	}
	if before.description != after.description {
		ct.MarkDirty(FieldDescription, after.description)
	}
	return ct
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
