package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		`images\mug.png`:      "images/mug.png",
		"images/mug.png":      "images/mug.png",
		`C:\shop\img\a b.jpg`: "C:/shop/img/a b.jpg",
		"":                    "",
		`\\server\share`:      "//server/share",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePath(in), "input %q", in)
	}
}

// TestNormalizePath_Idempotent verifies normalize(normalize(p)) == normalize(p).
func TestNormalizePath_Idempotent(t *testing.T) {
	for _, p := range []string{`a\b\c`, "a/b", `mixed\sep/x`, ""} {
		once := NormalizePath(p)
		assert.Equal(t, once, NormalizePath(once))
		assert.NotContains(t, once, `\`)
	}
}

func TestNormalizePaths_KeepsOrderAndDuplicates(t *testing.T) {
	got := NormalizePaths([]string{`b\1.png`, "a/2.png", "b/1.png"})
	assert.Equal(t, []string{"b/1.png", "a/2.png", "b/1.png"}, got)
}
