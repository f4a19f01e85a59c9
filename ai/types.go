package ai

// ProfileCard is a compact, prompt-ready description of one employee.
// Only the fields useful for generation are carried; slices are already
// truncated by the caller.
type ProfileCard struct {
	Name     string
	Role     string
	Skills   []string
	Projects []string
}

// MatchPrompt carries the two profiles plus the deterministically computed
// overlap facts that seed match-content generation. The facts are computed
// before the call; generation may elaborate on them but never replaces them.
type MatchPrompt struct {
	Target         ProfileCard
	Candidate      ProfileCard
	SharedSkills   []string
	TechOverlap    []string
	SharedDomains  []string
	SharedPatterns []string
}

// RankedCandidate is one recommended connection inside a CollaborationPrompt.
type RankedCandidate struct {
	Card  ProfileCard
	Score float64
}

// CollaborationPrompt carries a target employee and their ranked connections
// for roster-level summary generation.
type CollaborationPrompt struct {
	Target     ProfileCard
	Candidates []RankedCandidate
}

// GeneratedMatch is the parsed result of a match-content generation call.
type GeneratedMatch struct {
	ReasonSummary            string   `json:"reasonSummary"`
	CollaborationSuggestions []string `json:"collaborationSuggestions"`
}

// ExtractedProfile is a best-effort structured profile derived from free
// text. Fields the model could not determine are empty, not errors.
type ExtractedProfile struct {
	Role       string   `json:"role"`
	Seniority  string   `json:"seniority"`
	Department string   `json:"department"`
	Skills     []string `json:"skills"`
	Projects   []string `json:"projects"`
}
