package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for persisted roster entries.
// It is derived from employee content so that re-seeding the same roster
// produces the same keys.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Project is a single project entry on an employee profile.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

// Profile holds the mutable, matchable attributes of an employee.
// Skills and Tools are treated as sets for matching; slice order is
// preserved only for display.
type Profile struct {
	Role                string    `json:"role"`
	Seniority           string    `json:"seniority"`
	Department          string    `json:"department"`
	Location            string    `json:"location"`
	Manager             string    `json:"manager"`
	ExperienceYears     int       `json:"experienceYears"`
	ProfessionalSummary string    `json:"professionalSummary"`
	Skills              []string  `json:"skills"`
	Tools               []string  `json:"tools"`
	Projects            []Project `json:"projects"`
	Interests           []string  `json:"interests"`
	PrimarySkills       []string  `json:"primarySkills"`
	SecondarySkills     []string  `json:"secondarySkills"`
}

// Employee is a member of the searchable population.
// Identity fields (Id, Name, Email) are immutable once created.
// RawText is a free-form biography used to derive the embedding; when empty
// it is synthesized from the profile at load time.
// A nil or all-zero Embedding means the employee has no usable embedding and
// must be excluded from similarity ranking.
type Employee struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Profile   Profile   `json:"profile"`
	RawText   string    `json:"rawText,omitempty"`
	Embedding []float32 `json:"-"`
}

// NewQueryEmployee builds a synthetic query-side employee with a fully
// populated (but empty) profile. Ranking and explanation code can treat it
// exactly like a roster employee without special-casing missing fields.
// Query employees are never persisted into the population.
func NewQueryEmployee(id, name, email, rawText string) *Employee {
	return &Employee{
		Id:      id,
		Name:    name,
		Email:   email,
		RawText: rawText,
		Profile: Profile{
			Role:            "Unknown",
			Seniority:       "Unknown",
			Department:      "Unknown",
			Skills:          []string{},
			Tools:           []string{},
			Projects:        []Project{},
			Interests:       []string{},
			PrimarySkills:   []string{},
			SecondarySkills: []string{},
		},
	}
}

// EmailLocalPart returns the text before the "@" of the employee email,
// lowercased. Returns "" when the email has no local part.
func (e *Employee) EmailLocalPart() string {
	at := strings.IndexByte(e.Email, '@')
	if at <= 0 {
		return ""
	}
	return strings.ToLower(e.Email[:at])
}

// HasEmbedding reports whether the employee carries a non-zero embedding.
func (e *Employee) HasEmbedding() bool {
	for _, v := range e.Embedding {
		if v != 0 {
			return true
		}
	}
	return false
}

// ProjectNames returns the ordered project names on the profile.
func (p *Profile) ProjectNames() []string {
	names := make([]string, len(p.Projects))
	for i, proj := range p.Projects {
		names[i] = proj.Name
	}
	return names
}

// MatchResult is a ranked candidate with its score and explanation.
// Score is a rank key, not a probability; scores produced by different
// search modes (name, hybrid, semantic) are not comparable to each other.
type MatchResult struct {
	Employee *Employee `json:"employee"`
	Score    float64   `json:"score"`
	Reasons  []string  `json:"reasons"`
}

// DetailedMatch is a stateless pairwise comparison between a target and a
// candidate. It is computed on demand per request and never cached.
type DetailedMatch struct {
	SharedSkills             []string `json:"sharedSkills"`
	MatchingProjects         []string `json:"matchingProjects"`
	MatchingDomains          []string `json:"matchingDomains"`
	TechOverlap              []string `json:"techOverlap"`
	SharedPatterns           []string `json:"sharedPatterns"`
	MatchingSeniority        bool     `json:"matchingSeniority"`
	ReasonSummary            string   `json:"reasonSummary"`
	CollaborationSuggestions []string `json:"collaborationSuggestions"`
}
