package engine

import (
	"strings"

	"github.com/piyushtamaskar21/collab-connect/ai"
)

// minReasonLength is the minimum accepted length of a generated reason
// summary. Anything shorter carries no real content.
const minReasonLength = 20

// forbiddenPhrases rejects generated output that degenerated into filler or
// assistant boilerplate instead of a concrete match explanation.
var forbiddenPhrases = []string{
	"as an ai",
	"language model",
	"i cannot",
	"i am unable",
	"i'm unable",
	"no specific reason",
	"not enough information",
}

// acceptSummary reports whether a generated summary text passes validation:
// long enough to carry content and free of forbidden phrases.
func acceptSummary(summary string) bool {
	summary = strings.TrimSpace(summary)
	if len(summary) < minReasonLength {
		return false
	}

	lower := strings.ToLower(summary)
	for _, phrase := range forbiddenPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}

// acceptGenerated reports whether generated match content passes validation.
// Rejected content is replaced by the deterministic fallback; the rejected
// text is never surfaced.
func acceptGenerated(generated *ai.GeneratedMatch) bool {
	if generated == nil {
		return false
	}
	if !acceptSummary(generated.ReasonSummary) {
		return false
	}
	if len(generated.CollaborationSuggestions) == 0 {
		return false
	}
	return true
}
