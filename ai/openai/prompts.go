package openai

import (
	"fmt"
	"strings"

	"github.com/piyushtamaskar21/collab-connect/ai"
)

const matchSystemPrompt = `You are an expert team collaboration advisor. You output only valid JSON.

Given a target employee, a matched candidate, and their computed overlap,
generate:
1. A concise 1-2 sentence reason summary explaining why the two are a good match.
2. Exactly 2-3 specific, actionable collaboration suggestions.

Return exactly this JSON shape, with no text outside the object:
{
  "reasonSummary": "...",
  "collaborationSuggestions": ["...", "..."]
}

Focus on complementary skills, shared expertise, and concrete collaboration
opportunities. Be specific: name technologies and project areas from the
input. Never invent skills or projects that are not listed.`

const collaborationSystemPrompt = `You are CollabConnect, an expert in organizational dynamics.

Given a target employee and their recommended connections, produce a
human-friendly collaboration summary that explains:
1. Why these people were selected, looking for thematic connections beyond keyword matches.
2. Specific ways they can collaborate, such as mentoring, cross-pollination of ideas, or tech stack alignment.
3. Potential impact on the organization.

Keep it concise, encouraging, and actionable. Output plain text only, no JSON
and no markdown. Never invent skills or projects that are not listed.`

const extractionSystemPrompt = `You extract structured profile data from resume or biography text. You output only valid JSON.

Return exactly this JSON shape, with no text outside the object:
{
  "role": "...",
  "seniority": "...",
  "department": "...",
  "skills": ["..."],
  "projects": ["..."]
}

Rules:
- role is the person's job title, e.g. "Backend Engineer".
- seniority is one of: Junior, Mid-level, Senior, Staff, Principal. Use "" if unclear.
- department is the closest of: Engineering, Product, Design, Data, Platform Engineering, Infrastructure. Use "" if unclear.
- skills are concrete technologies and competencies explicitly mentioned.
- projects are short names of projects or initiatives explicitly mentioned.
- Use empty strings and empty arrays for anything the text does not state. Do not hallucinate.`

// buildMatchPrompt renders a MatchPrompt into the user message for match
// content generation.
func buildMatchPrompt(prompt ai.MatchPrompt) string {
	var b strings.Builder

	writeCard := func(label string, card ai.ProfileCard) {
		fmt.Fprintf(&b, "%s:\n- Name: %s\n- Role: %s\n- Skills: %s\n- Recent Projects: %s\n\n",
			label, card.Name, card.Role,
			joinOrNone(card.Skills), joinOrNone(card.Projects))
	}

	writeCard("Target Employee", prompt.Target)
	writeCard("Matched Employee", prompt.Candidate)

	fmt.Fprintf(&b, "Overlap:\n- Shared Skills: %s\n- Tech Stack Overlap: %s\n- Matching Project Domains: %s\n- Shared Architecture Patterns: %s\n",
		joinOrNone(prompt.SharedSkills),
		joinOrNone(prompt.TechOverlap),
		joinOrNone(prompt.SharedDomains),
		joinOrNone(prompt.SharedPatterns))

	return b.String()
}

// buildCollaborationPrompt renders a CollaborationPrompt into the user
// message for roster-level summary generation.
func buildCollaborationPrompt(prompt ai.CollaborationPrompt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target Employee: %s (%s)\nSkills: %s\nRecent Projects: %s\n\nRecommended Connections:\n",
		prompt.Target.Name, prompt.Target.Role,
		joinOrNone(prompt.Target.Skills), joinOrNone(prompt.Target.Projects))

	for _, candidate := range prompt.Candidates {
		fmt.Fprintf(&b, "- %s (%s)\n  Skills: %s\n  Recent Projects: %s\n  Match Score: %.2f\n",
			candidate.Card.Name, candidate.Card.Role,
			joinOrNone(candidate.Card.Skills), joinOrNone(candidate.Card.Projects),
			candidate.Score)
	}

	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
