package match

import (
	"strings"

	"github.com/xrash/smetrics"
)

// DefaultFuzzyThreshold is the minimum edit-similarity ratio for a fuzzy
// token match. Hand-tuned; preserved as-is rather than re-derived.
const DefaultFuzzyThreshold = 0.8

// Ratio computes a normalized edit similarity between two strings in [0,1].
// 1.0 means identical; 0.0 means nothing in common.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 1)
	return 1.0 - float64(dist)/float64(longest)
}

// FuzzyMatch reports whether term approximately occurs in text. It is true
// when term is a literal substring of text, or when any whitespace-delimited
// token of text has an edit-similarity ratio to term above threshold.
// Both inputs are compared case-insensitively.
func FuzzyMatch(term, text string, threshold float64) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	text = strings.ToLower(text)
	if term == "" {
		return false
	}

	if strings.Contains(text, term) {
		return true
	}

	for _, token := range strings.Fields(text) {
		if Ratio(term, token) > threshold {
			return true
		}
	}
	return false
}

// longestCommonSubstring returns the length of the longest contiguous
// substring shared by a and b.
func longestCommonSubstring(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	best := 0

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best = curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return best
}
