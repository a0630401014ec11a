package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SuggestSlug derives a slug from a product title: lower-cased, spaces turned
// into hyphens, accents folded onto their base letter and anything outside
// [a-z0-9-] dropped. "Crème Brûlée 2" becomes "creme-brulee-2".
func SuggestSlug(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	// Transformers keep state, so build a fresh chain per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
