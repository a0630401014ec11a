package domain

import "sort"

// Indices are the distinct category and boutique values present in a catalog.
// They feed the suggestion lists of the entry form.
type Indices struct {
	categories map[string]struct{}
	boutiques  map[string]struct{}
}

// ExtractIndices recomputes both sets from scratch. Empty values are skipped.
func ExtractIndices(products []*Product) Indices {
	ix := Indices{
		categories: make(map[string]struct{}),
		boutiques:  make(map[string]struct{}),
	}
	for _, p := range products {
		if c := p.Category(); c != "" {
			ix.categories[c] = struct{}{}
		}
		if b := p.Boutique(); b != "" {
			ix.boutiques[b] = struct{}{}
		}
	}
	return ix
}

// Categories returns the known categories in lexical order.
func (ix Indices) Categories() []string {
	return sortedKeys(ix.categories)
}

// Boutiques returns the known boutiques in lexical order.
func (ix Indices) Boutiques() []string {
	return sortedKeys(ix.boutiques)
}

// HasCategory reports whether category is already used by some product.
func (ix Indices) HasCategory(category string) bool {
	_, ok := ix.categories[category]
	return ok
}

// HasBoutique reports whether boutique is already used by some product.
func (ix Indices) HasBoutique(boutique string) bool {
	_, ok := ix.boutiques[boutique]
	return ok
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
