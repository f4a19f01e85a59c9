package match

import (
	"sort"
	"strings"
	"unicode"

	"github.com/piyushtamaskar21/collab-connect/core"
)

// Name ranking constants. Hand-tuned; preserved for behavior parity.
const (
	nameExactScore     = 1.0
	nameSubstringScore = 0.8
	nameFuzzyPenalty   = 0.9
	nameFuzzyFloor     = 0.7
	nameLCSCoverage    = 0.7
	emailExactFloor    = 0.9
	emailPartialFloor  = 0.7
	nameMinScore       = 0.4
)

// technicalKeywords is the denylist for name detection: a query containing
// any of these tokens is a skill/role lookup, not a person lookup.
var technicalKeywords = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true,
	"golang": true, "rust": true, "react": true, "angular": true, "vue": true,
	"kafka": true, "docker": true, "kubernetes": true, "aws": true, "gcp": true,
	"azure": true, "sql": true, "postgresql": true, "mongodb": true, "redis": true,
	"engineer": true, "engineering": true, "developer": true, "designer": true,
	"manager": true, "architect": true, "analyst": true, "scientist": true,
	"senior": true, "junior": true, "staff": true, "principal": true, "lead": true,
	"backend": true, "frontend": true, "fullstack": true, "devops": true,
	"data": true, "machine": true, "learning": true, "ml": true, "ai": true,
}

// LooksLikeName reports whether a query is shaped like a person's name:
// one to three whitespace-delimited tokens, every token starting with an
// uppercase letter, and no token on the technical-keyword denylist.
func LooksLikeName(query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) < 1 || len(tokens) > 3 {
		return false
	}

	for _, token := range tokens {
		if technicalKeywords[strings.ToLower(token)] {
			return false
		}
		first := []rune(token)[0]
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

// RankByName ranks employees against a name-shaped query.
//
// The score for each employee is a rule cascade: exact case-insensitive name
// match scores 1.0; a substring hit scores 0.8; otherwise a fuzzy ratio is
// used, floored at 0.7 when the longest common contiguous run covers more
// than 70% of the query, and penalized by 0.9 so fuzzy hits sort below exact
// hits. The email local-part can then raise (never lower) the score: exact
// match floors it at 0.9, substring at 0.7. Candidates at or below 0.4 are
// dropped; the rest are returned in stable descending order, capped at topK.
func RankByName(query string, employees []*core.Employee, topK int) []core.MatchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	results := make([]core.MatchResult, 0, len(employees))
	for _, emp := range employees {
		score, reason := nameScore(q, emp)
		if score <= nameMinScore {
			continue
		}
		results = append(results, core.MatchResult{
			Employee: emp,
			Score:    score,
			Reasons:  []string{reason},
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}

func nameScore(query string, emp *core.Employee) (float64, string) {
	name := strings.ToLower(emp.Name)

	var score float64
	var reason string
	switch {
	case name == query:
		score = nameExactScore
		reason = "Name matches the query exactly"
	case strings.Contains(name, query):
		score = nameSubstringScore
		reason = "Name contains the query"
	default:
		ratio := Ratio(query, name)
		if float64(longestCommonSubstring(query, name)) > nameLCSCoverage*float64(len(query)) {
			if ratio < nameFuzzyFloor {
				ratio = nameFuzzyFloor
			}
		}
		score = ratio * nameFuzzyPenalty
		reason = "Name closely resembles the query"
	}

	// Email local-part can raise the score, never lower it.
	if local := emp.EmailLocalPart(); local != "" {
		if local == query {
			if score < emailExactFloor {
				score = emailExactFloor
				reason = "Email address matches the query"
			}
		} else if strings.Contains(local, query) {
			if score < emailPartialFloor {
				score = emailPartialFloor
				reason = "Email address contains the query"
			}
		}
	}

	return score, reason
}
