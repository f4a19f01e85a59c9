// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package match

import (
	"strings"

	"github.com/piyushtamaskar21/collab-connect/core"
)

// Keyword scoring constants. The values are hand-tuned for behavior parity
// with the production system; do not re-derive them.
const (
	// PhraseBonus is awarded once when the full query appears verbatim in
	// the employee's searchable text.
	PhraseBonus = 0.5

	// TokenBonus is awarded per individual query term found in the
	// searchable text.
	TokenBonus = 0.15

	// KeywordCap bounds the total keyword score so long queries cannot
	// dominate the hybrid score.
	KeywordCap = 1.0
)

// SearchBlob builds the lowercased searchable text for an employee: name,
// role, department, skills, tools, and project names and descriptions.
func SearchBlob(emp *core.Employee) string {
	var b strings.Builder
	b.WriteString(emp.Name)
	b.WriteByte(' ')
	b.WriteString(emp.Profile.Role)
	b.WriteByte(' ')
	b.WriteString(emp.Profile.Department)
	for _, skill := range emp.Profile.Skills {
		b.WriteByte(' ')
		b.WriteString(skill)
	}
	for _, tool := range emp.Profile.Tools {
		b.WriteByte(' ')
		b.WriteString(tool)
	}
	for _, project := range emp.Profile.Projects {
		b.WriteByte(' ')
		b.WriteString(project.Name)
		b.WriteByte(' ')
		b.WriteString(project.Description)
	}
	return strings.ToLower(b.String())
}

// Score computes the keyword score of a query against an employee, in
// [0, KeywordCap], together with the (synonym-expanded) terms that matched.
// A verbatim phrase hit earns PhraseBonus; every individual term found in
// the blob earns TokenBonus, up to the cap.
func Score(query string, emp *core.Employee) (float64, []string) {
	blob := SearchBlob(emp)
	phrase := strings.ToLower(strings.TrimSpace(query))
	if phrase == "" {
		return 0, nil
	}

	var score float64
	if strings.Contains(blob, phrase) {
		score += PhraseBonus
	}

	terms := ExpandTerms(strings.Fields(phrase))
	matched := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(blob, term) {
			score += TokenBonus
			matched = append(matched, term)
		}
	}

	if score > KeywordCap {
		score = KeywordCap
	}
	return score, matched
}
