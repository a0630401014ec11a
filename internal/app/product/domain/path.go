package domain

import "strings"

// NormalizePath rewrites every backslash to a forward slash so image paths
// read the same whichever OS produced them. Empty input is returned as is.
func NormalizePath(p string) string {
	if p == "" {
		return p
	}
	return strings.ReplaceAll(p, `\`, "/")
}

// NormalizePaths returns a normalized copy of paths, keeping order and duplicates.
func NormalizePaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, NormalizePath(p))
	}
	return out
}

// appendUnique appends each value not already present in dst, preserving
// insertion order, and reports how many were added.
func appendUnique(dst []string, values ...string) ([]string, int) {
	added := 0
	for _, v := range values {
		if containsString(dst, v) {
			continue
		}
		dst = append(dst, v)
		added++
	}
	return dst, added
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
