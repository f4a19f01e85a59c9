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


package reason

import (
	"fmt"
	"strings"

	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/piyushtamaskar21/collab-connect/match"
)

// projectFuzzyThreshold is the ratio used for fuzzy project-name overlap.
// Higher than the general threshold because project names are short proper
// nouns where loose matches are mostly noise.
const projectFuzzyThreshold = 0.85

// maxReasons caps the explanation list attached to a single result.
const maxReasons = 3

// Explain returns an ordered list of human-readable reasons why candidate
// matches target. Rules compose rather than replace each other: shared
// project experience takes precedence over skill alignment, then domain
// overlap, then a same-department fallback. The list is never empty; when
// nothing overlaps a generic complementary-background reason is returned.
func Explain(target, candidate *core.Employee) []string {
	reasons := make([]string, 0, maxReasons)

	if projects := sharedProjects(target, candidate); len(projects) > 0 {
		reasons = append(reasons,
			fmt.Sprintf("Shared project experience: %s", strings.Join(capList(projects, 2), ", ")))
	}

	if skills := SharedSkills(target, candidate); len(skills) >= 2 {
		reasons = append(reasons,
			fmt.Sprintf("Strong alignment on %s", strings.Join(capList(skills, 3), ", ")))
	}

	if domains := sharedDomains(target, candidate); len(domains) > 0 {
		reasons = append(reasons,
			fmt.Sprintf("Both have worked on %s projects", strings.Join(capList(domains, 2), " and ")))
	}

	if len(reasons) == 0 && target.Profile.Department == candidate.Profile.Department &&
		target.Profile.Department != "" {
		reasons = append(reasons,
			fmt.Sprintf("Both working in %s", target.Profile.Department))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Complementary background and diverse perspective")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// ExplainQuery returns which of the employee's attributes matched the
// (synonym-expanded) query terms: skills, tools, project names, and role.
// The list is deduplicated, capped at three entries, and never empty.
func ExplainQuery(emp *core.Employee, terms []string) []string {
	reasons := make([]string, 0, maxReasons)
	seen := make(map[string]bool)

	add := func(reason string) {
		if !seen[reason] && len(reasons) < maxReasons {
			seen[reason] = true
			reasons = append(reasons, reason)
		}
	}

	for _, term := range terms {
		for _, skill := range emp.Profile.Skills {
			if strings.Contains(strings.ToLower(skill), term) {
				add(fmt.Sprintf("Skilled in %s", skill))
			}
		}
		for _, tool := range emp.Profile.Tools {
			if strings.Contains(strings.ToLower(tool), term) {
				add(fmt.Sprintf("Works with %s", tool))
			}
		}
		for _, project := range emp.Profile.Projects {
			if strings.Contains(strings.ToLower(project.Name), term) {
				add(fmt.Sprintf("Worked on %s", project.Name))
			}
		}
		if strings.Contains(strings.ToLower(emp.Profile.Role), term) {
			add(fmt.Sprintf("Role: %s", emp.Profile.Role))
		}
	}

	if len(reasons) == 0 {
		add("Profile is semantically related to the query")
	}
	return reasons
}

// SharedSkills returns the case-insensitive intersection of the two skill
// sets, preserving the target's ordering and original casing.
func SharedSkills(target, candidate *core.Employee) []string {
	candidateSkills := make(map[string]bool, len(candidate.Profile.Skills))
	for _, skill := range candidate.Profile.Skills {
		candidateSkills[strings.ToLower(skill)] = true
	}

	shared := make([]string, 0, len(target.Profile.Skills))
	for _, skill := range target.Profile.Skills {
		if candidateSkills[strings.ToLower(skill)] {
			shared = append(shared, skill)
		}
	}
	return shared
}

// sharedProjects returns target project names that fuzzily match a candidate
// project name.
func sharedProjects(target, candidate *core.Employee) []string {
	var shared []string
	for _, tp := range target.Profile.Projects {
		for _, cp := range candidate.Profile.Projects {
			if match.FuzzyMatch(tp.Name, cp.Name, projectFuzzyThreshold) {
				shared = append(shared, tp.Name)
				break
			}
		}
	}
	return shared
}

// sharedDomains returns the domain categories present in both employees'
// project text, in a stable category order.
func sharedDomains(target, candidate *core.Employee) []string {
	targetDomains := projectDomains(target)
	candidateDomains := projectDomains(candidate)

	var shared []string
	for _, category := range domainOrder() {
		if targetDomains[category] && candidateDomains[category] {
			shared = append(shared, category)
		}
	}
	return shared
}

// projectDomains classifies an employee's projects into domain categories by
// keyword membership over names and descriptions.
func projectDomains(emp *core.Employee) map[string]bool {
	var text strings.Builder
	for _, project := range emp.Profile.Projects {
		text.WriteString(strings.ToLower(project.Name))
		text.WriteByte(' ')
		text.WriteString(strings.ToLower(project.Description))
		text.WriteByte(' ')
	}
	blob := text.String()

	domains := make(map[string]bool)
	for category, keywords := range domainKeywords {
		for _, keyword := range keywords {
			if strings.Contains(blob, keyword) {
				domains[category] = true
				break
			}
		}
	}
	return domains
}

// domainOrder returns the category names in a fixed order so explanations
// are deterministic across runs.
func domainOrder() []string {
	return []string{"Backend", "Frontend", "Data", "Mobile", "Platform", "ML", "Security"}
}

// capList returns at most n entries of list.
func capList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
