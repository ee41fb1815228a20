// Package strings parses comma-separated lists from env vars and query strings.
package strings

import (
	"strings"
)

// SplitList splits raw on sep, trims each part and drops empties and repeats.
// Order of first occurrence is kept. An empty raw yields nil.
func SplitList(raw, sep string) []string {
	return splitList(raw, sep, false)
}

// SplitListLower is SplitList with every part lowercased before comparison,
// so "Pending,pending" collapses to one entry.
func SplitListLower(raw, sep string) []string {
	return splitList(raw, sep, true)
}

func splitList(raw, sep string, lower bool) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, sep)
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if lower {
			p = strings.ToLower(p)
		}
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
