package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		writeError(w, http.StatusBadRequest, "Resume text is required")
		return
	}

	topK := req.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	recommendation := s.engine.Recommend(r.Context(), req.ResumeText, topK, s.generation)

	recommendations := make([]recommendationResponse, 0, len(recommendation.Matches))
	for _, m := range recommendation.Matches {
		emp := m.Employee
		recommendations = append(recommendations, recommendationResponse{
			Id:                  emp.Id,
			Name:                emp.Name,
			Title:               emp.Profile.Role,
			Department:          emp.Profile.Department,
			Location:            emp.Profile.Location,
			Email:               emp.Email,
			Manager:             emp.Profile.Manager,
			ExperienceYears:     emp.Profile.ExperienceYears,
			ProfessionalSummary: emp.Profile.ProfessionalSummary,
			Skills:              emp.Profile.Skills,
			PrimarySkills:       emp.Profile.PrimarySkills,
			SecondarySkills:     emp.Profile.SecondarySkills,
			Tools:               emp.Profile.Tools,
			Projects:            newProjectResponses(emp.Profile.Projects),
			MatchScore:          m.Score,
			Summary:             m.Details.ReasonSummary,
			AvatarUrl:           avatarUrl(emp.Name),
			ResumeMatch: &resumeMatchResponse{
				SharedSkills:      m.Details.SharedSkills,
				MatchingProjects:  m.Details.MatchingProjects,
				MatchingDomains:   m.Details.MatchingDomains,
				TechOverlap:       m.Details.TechOverlap,
				SharedPatterns:    m.Details.SharedPatterns,
				MatchingSeniority: m.Details.MatchingSeniority,
				ReasonSummary:     m.Details.ReasonSummary,
			},
			CollaborationSuggestions: m.Details.CollaborationSuggestions,
		})
	}

	writeJSON(w, http.StatusOK, recommendResponse{Recommendations: recommendations})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	topK := req.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	results := s.engine.Search(r.Context(), req.Query, topK)

	matches := make([]matchResponse, 0, len(results))
	for _, result := range results {
		matches = append(matches, newMatchResponse(result))
	}
	writeJSON(w, http.StatusOK, matchListResponse{Matches: matches})
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	results := s.engine.FindSimilar(r.Context(), id, defaultTopK)

	matches := make([]matchResponse, 0, len(results))
	for _, result := range results {
		matches = append(matches, newMatchResponse(result))
	}
	writeJSON(w, http.StatusOK, matchListResponse{Matches: matches})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
