package match

import "strings"

// synonyms maps common query shorthands to the terms profiles actually use.
// Expansion is additive: both the original and the expanded term participate
// in matching.
var synonyms = map[string][]string{
	"js":         {"javascript"},
	"ts":         {"typescript"},
	"k8s":        {"kubernetes"},
	"ml":         {"machine learning"},
	"ai":         {"machine learning", "artificial intelligence"},
	"golang":     {"go"},
	"postgres":   {"postgresql"},
	"db":         {"database"},
	"infra":      {"infrastructure"},
	"frontend":   {"front-end", "react"},
	"backend":    {"back-end", "api"},
	"ci":         {"ci/cd"},
	"containers": {"docker", "kubernetes"},
}

// ExpandTerms lowercases the query tokens and appends synonym expansions,
// deduplicating while preserving first-seen order.
func ExpandTerms(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	expanded := make([]string, 0, len(tokens))

	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		expanded = append(expanded, term)
	}

	for _, token := range tokens {
		add(token)
		for _, syn := range synonyms[strings.ToLower(token)] {
			add(syn)
		}
	}
	return expanded
}
