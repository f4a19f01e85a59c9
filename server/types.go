package server

import (
	"fmt"
	"strings"

	"github.com/piyushtamaskar21/collab-connect/core"
)

type recommendRequest struct {
	ResumeText string `json:"resumeText"`
	TopK       int    `json:"topK,omitempty"`
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"topK,omitempty"`
}

type projectResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

type resumeMatchResponse struct {
	SharedSkills      []string `json:"sharedSkills"`
	MatchingProjects  []string `json:"matchingProjects"`
	MatchingDomains   []string `json:"matchingDomains"`
	TechOverlap       []string `json:"techOverlap"`
	SharedPatterns    []string `json:"sharedPatterns"`
	MatchingSeniority bool     `json:"matchingSeniority"`
	ReasonSummary     string   `json:"reasonSummary"`
}

type recommendationResponse struct {
	Id                       string               `json:"id"`
	Name                     string               `json:"name"`
	Title                    string               `json:"title"`
	Department               string               `json:"department"`
	Location                 string               `json:"location"`
	Email                    string               `json:"email"`
	Manager                  string               `json:"manager"`
	ExperienceYears          int                  `json:"experienceYears"`
	ProfessionalSummary      string               `json:"professionalSummary"`
	Skills                   []string             `json:"skills"`
	PrimarySkills            []string             `json:"primarySkills"`
	SecondarySkills          []string             `json:"secondarySkills"`
	Tools                    []string             `json:"tools"`
	Projects                 []projectResponse    `json:"projects"`
	MatchScore               float64              `json:"matchScore"`
	Summary                  string               `json:"summary"`
	AvatarUrl                string               `json:"avatarUrl"`
	ResumeMatch              *resumeMatchResponse `json:"resumeMatch,omitempty"`
	CollaborationSuggestions []string             `json:"collaborationSuggestions"`
}

type recommendResponse struct {
	Recommendations []recommendationResponse `json:"recommendations"`
}

type matchResponse struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Department string   `json:"department"`
	Location   string   `json:"location"`
	Email      string   `json:"email"`
	AvatarUrl  string   `json:"avatarUrl"`
	Score      float64  `json:"score"`
	Reasons    []string `json:"reasons"`
}

type matchListResponse struct {
	Matches []matchResponse `json:"matches"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func avatarUrl(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random",
		strings.ReplaceAll(name, " ", "+"))
}

func newMatchResponse(result core.MatchResult) matchResponse {
	emp := result.Employee
	return matchResponse{
		Id:         emp.Id,
		Name:       emp.Name,
		Title:      emp.Profile.Role,
		Department: emp.Profile.Department,
		Location:   emp.Profile.Location,
		Email:      emp.Email,
		AvatarUrl:  avatarUrl(emp.Name),
		Score:      result.Score,
		Reasons:    result.Reasons,
	}
}

func newProjectResponses(projects []core.Project) []projectResponse {
	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = projectResponse{Name: p.Name, Description: p.Description, Tech: p.Tech}
	}
	return out
}
