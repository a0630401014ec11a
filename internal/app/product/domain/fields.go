package domain

import (
	"strconv"
	"strings"
)

// Fields is the raw input for a create or update, exactly as the entry form
// holds it: every scalar is text, parsing happens in the Validator.
type Fields struct {
	Title         string
	Slug          string
	Short         string
	Category      string
	Boutique      string
	Price         string
	PriceBoutique string
	OldPrice      string
	Stock         string
	Rating        string
	Images        []string
	Features      []string
	Description   string
}

// SuggestSlug fills a blank slug from the title. A slug the user typed is
// never replaced.
func (f *Fields) SuggestSlug() {
	if strings.TrimSpace(f.Slug) == "" {
		f.Slug = SuggestSlug(f.Title)
	}
}

// AddImages appends normalized paths that are not already listed and returns
// how many were added.
func (f *Fields) AddImages(paths ...string) int {
	var added int
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		var n int
		f.Images, n = appendUnique(f.Images, NormalizePath(p))
		added += n
	}
	return added
}

// RemoveImage drops the image at index i. It reports false when i is out of range.
func (f *Fields) RemoveImage(i int) bool {
	if i < 0 || i >= len(f.Images) {
		return false
	}
	f.Images = append(f.Images[:i], f.Images[i+1:]...)
	return true
}

func (f *Fields) ClearImages() {
	f.Images = nil
}

// AddFeatures appends trimmed, non-blank features that are not already listed
// and returns how many were added.
func (f *Fields) AddFeatures(features ...string) int {
	var added int
	for _, feat := range features {
		feat = strings.TrimSpace(feat)
		if feat == "" {
			continue
		}
		var n int
		f.Features, n = appendUnique(f.Features, feat)
		added += n
	}
	return added
}

// ImportFeatures treats text as one feature per line. Blank lines and
// duplicates are skipped; the count of new features is returned.
func (f *Fields) ImportFeatures(text string) int {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return f.AddFeatures(strings.Split(text, "\n")...)
}

// RemoveFeature drops the feature at index i. It reports false when i is out of range.
func (f *Fields) RemoveFeature(i int) bool {
	if i < 0 || i >= len(f.Features) {
		return false
	}
	f.Features = append(f.Features[:i], f.Features[i+1:]...)
	return true
}

func (f *Fields) ClearFeatures() {
	f.Features = nil
}

// FieldsFromProduct loads an existing product into form values for editing.
// Unset optional prices come back as empty strings.
func FieldsFromProduct(p *Product) Fields {
	return Fields{
		Title:         p.Title(),
		Slug:          p.Slug(),
		Short:         p.Short(),
		Category:      p.Category(),
		Boutique:      p.Boutique(),
		Price:         formatFloat(p.Price()),
		PriceBoutique: formatOptionalFloat(p.PriceBoutique()),
		OldPrice:      formatOptionalFloat(p.OldPrice()),
		Stock:         strconv.Itoa(p.Stock()),
		Rating:        formatFloat(p.Rating()),
		Images:        p.Images(),
		Features:      p.Features(),
		Description:   p.Description(),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
