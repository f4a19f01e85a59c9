package reason

import (
	"strings"

	"github.com/piyushtamaskar21/collab-connect/core"
)

// Overlap holds the structured shared-attribute facts between a target and a
// candidate. It seeds the generated match summary and builds the
// deterministic fallback when generation is unavailable.
type Overlap struct {
	SharedSkills      []string
	MatchingProjects  []string // shared domain categories of project work
	MatchingDomains   []string // shared department
	TechOverlap       []string // shared skills on the technology allowlist
	SharedPatterns    []string // shared architecture/tooling patterns
	MatchingSeniority bool
}

// ComputeOverlap derives the full overlap between two employees. It is a
// pure function of the two profiles.
func ComputeOverlap(target, candidate *core.Employee) Overlap {
	shared := SharedSkills(target, candidate)

	overlap := Overlap{
		SharedSkills:     shared,
		MatchingProjects: sharedDomains(target, candidate),
		TechOverlap:      techOverlap(shared),
		SharedPatterns:   sharedPatterns(target, candidate),
	}

	if target.Profile.Department == candidate.Profile.Department &&
		target.Profile.Department != "" {
		overlap.MatchingDomains = []string{target.Profile.Department}
	}

	targetRank := seniorityRank(target.Profile.Seniority)
	candidateRank := seniorityRank(candidate.Profile.Seniority)
	if targetRank >= 0 && candidateRank >= 0 {
		distance := targetRank - candidateRank
		if distance < 0 {
			distance = -distance
		}
		overlap.MatchingSeniority = distance <= 1
	}

	return overlap
}

// techOverlap filters shared skills down to the technology allowlist.
func techOverlap(sharedSkills []string) []string {
	var overlap []string
	for _, skill := range sharedSkills {
		if techKeywords[skill] {
			overlap = append(overlap, skill)
		}
	}
	return overlap
}

// sharedPatterns returns the architecture/tooling patterns present in both
// employees' skills and project text, in a stable order.
func sharedPatterns(target, candidate *core.Employee) []string {
	targetPatterns := extractPatterns(target)
	candidatePatterns := extractPatterns(candidate)

	var shared []string
	for _, pattern := range patternOrder() {
		if targetPatterns[pattern] && candidatePatterns[pattern] {
			shared = append(shared, pattern)
		}
	}
	return shared
}

// extractPatterns scans skills plus project names/descriptions/tech tags for
// pattern trigger keywords.
func extractPatterns(emp *core.Employee) map[string]bool {
	var text strings.Builder
	for _, skill := range emp.Profile.Skills {
		text.WriteString(strings.ToLower(skill))
		text.WriteByte(' ')
	}
	for _, project := range emp.Profile.Projects {
		text.WriteString(strings.ToLower(project.Name))
		text.WriteByte(' ')
		text.WriteString(strings.ToLower(project.Description))
		text.WriteByte(' ')
		for _, tech := range project.Tech {
			text.WriteString(strings.ToLower(tech))
			text.WriteByte(' ')
		}
	}
	blob := text.String()

	patterns := make(map[string]bool)
	for pattern, triggers := range architecturePatterns {
		for _, trigger := range triggers {
			if strings.Contains(blob, trigger) {
				patterns[pattern] = true
				break
			}
		}
	}
	return patterns
}

func patternOrder() []string {
	return []string{
		"Microservices",
		"Containerization & Orchestration",
		"Event-Driven Architecture",
		"CI/CD Automation",
		"Infrastructure as Code",
		"API Design",
	}
}
