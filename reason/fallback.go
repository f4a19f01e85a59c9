package reason

import (
	"fmt"
	"strings"

	"github.com/piyushtamaskar21/collab-connect/core"
)

// maxSuggestions caps the collaboration suggestion list.
const maxSuggestions = 3

// FallbackSummary builds a deterministic reason summary from computed
// overlap facts. It is the substitute for generated content whenever the
// generation provider fails or its output is rejected, and has the same
// shape as the generated path so callers never branch on provider outcome.
func FallbackSummary(overlap Overlap) string {
	switch {
	case len(overlap.SharedSkills) > 0 && len(overlap.MatchingProjects) > 0:
		return fmt.Sprintf("Shared expertise in %s and similar project experience.",
			strings.Join(capList(overlap.SharedSkills, 2), ", "))
	case len(overlap.SharedSkills) > 0:
		return fmt.Sprintf("Strong alignment on %s.",
			strings.Join(capList(overlap.SharedSkills, 3), ", "))
	case len(overlap.MatchingProjects) > 0:
		return fmt.Sprintf("Experience in similar project domains: %s.",
			strings.Join(capList(overlap.MatchingProjects, 2), ", "))
	case len(overlap.MatchingDomains) > 0:
		return fmt.Sprintf("Both working in %s.", overlap.MatchingDomains[0])
	default:
		return "Complementary background and diverse perspective."
	}
}

// FallbackSuggestions builds deterministic collaboration suggestions from
// computed overlap facts. Always returns at least one suggestion, at most
// maxSuggestions.
func FallbackSuggestions(overlap Overlap) []string {
	suggestions := make([]string, 0, maxSuggestions)

	if len(overlap.SharedSkills) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Collaborate on projects involving %s.", overlap.SharedSkills[0]))
	}
	if len(overlap.SharedPatterns) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Exchange approaches to %s.", overlap.SharedPatterns[0]))
	}
	if len(overlap.MatchingProjects) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Pair on upcoming %s work.", overlap.MatchingProjects[0]))
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Share knowledge and best practices across areas of expertise.")
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// FallbackCollaborationSummary builds the deterministic roster-level
// narrative for a target and their ranked connections, one sentence per
// connection derived from the pairwise overlap.
func FallbackCollaborationSummary(target *core.Employee, matches []core.MatchResult) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No strong collaboration matches were found for %s.", target.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recommended connections for %s (%s).", target.Name, target.Profile.Role)

	for _, m := range matches {
		overlap := ComputeOverlap(target, m.Employee)
		b.WriteByte(' ')
		switch {
		case len(overlap.SharedSkills) > 0:
			fmt.Fprintf(&b, "%s shares %s.",
				m.Employee.Name, strings.Join(capList(overlap.SharedSkills, 2), " and "))
		case len(overlap.MatchingProjects) > 0:
			fmt.Fprintf(&b, "%s has experience in %s.",
				m.Employee.Name, strings.Join(capList(overlap.MatchingProjects, 2), ", "))
		default:
			fmt.Fprintf(&b, "%s offers a complementary %s perspective.",
				m.Employee.Name, m.Employee.Profile.Role)
		}
	}

	b.WriteString(" Connecting on these overlaps is a good starting point for mentoring and knowledge sharing.")
	return b.String()
}
