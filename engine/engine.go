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


package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/piyushtamaskar21/collab-connect/ai"
	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/piyushtamaskar21/collab-connect/index"
	"github.com/piyushtamaskar21/collab-connect/match"
	"github.com/piyushtamaskar21/collab-connect/reason"
)

const defaultPoolSize = 8

// Engine orchestrates matching over a loaded employee population.
// All query operations are safe for concurrent use; LoadEmployees swaps the
// snapshot exclusively.
type Engine struct {
	mu        sync.RWMutex
	employees []*core.Employee
	byId      map[string]*core.Employee
	idx       *index.Index

	provider ai.AIProvider
	pool     *ants.Pool
	weights  Weights
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used for per-candidate content
// generation. Default is 8.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size <= 0 {
			return ErrInvalidPoolSize
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool.Release()
		e.pool = pool
		return nil
	}
}

// WithWeights overrides the scoring tunables.
func WithWeights(weights Weights) Option {
	return func(e *Engine) error {
		e.weights = weights
		return nil
	}
}

// New creates a new matching engine on top of the given AI provider.
// The engine starts empty; call LoadEmployees to populate it.
func New(provider ai.AIProvider, opts ...Option) (*Engine, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	pool, err := ants.NewPool(defaultPoolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		byId:     map[string]*core.Employee{},
		idx:      index.Build(nil),
		provider: provider,
		pool:     pool,
		weights:  DefaultWeights(),
		logger:   slog.Default().With("component", "engine"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			// WithPoolSize may have swapped the pool; release the current one.
			e.pool.Release()
			return nil, err
		}
	}

	return e, nil
}

// Close releases the worker pool. The AI provider is closed by its owner.
func (e *Engine) Close() error {
	e.pool.Release()
	return nil
}

// Len returns the number of employees in the current snapshot.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.employees)
}

// Employee returns the snapshot employee with the given id.
func (e *Engine) Employee(id string) (*core.Employee, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	emp, ok := e.byId[id]
	return emp, ok
}

// Employees returns the current snapshot. The returned slice must not be
// mutated.
func (e *Engine) Employees() []*core.Employee {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.employees
}

// LoadEmployees validates the population, derives embeddings, and swaps in a
// fresh snapshot and index. An embedding provider failure is not fatal: the
// population is still loaded and searchable on keyword evidence alone, with
// every employee marked unrankable for the semantic term.
func (e *Engine) LoadEmployees(ctx context.Context, employees []*core.Employee) error {
	for _, emp := range employees {
		if err := core.ValidateEmployee(emp); err != nil {
			return fmt.Errorf("load employees: %w", err)
		}
		if emp.RawText == "" {
			emp.RawText = synthesizeRawText(emp)
		}
	}

	// Only embed employees that don't already carry an embedding, so a
	// roster reloaded from storage skips the provider entirely.
	var pending []int
	var texts []string
	for i, emp := range employees {
		if !emp.HasEmbedding() {
			pending = append(pending, i)
			texts = append(texts, emp.RawText)
		}
	}

	if len(pending) > 0 {
		embeddings, err := e.provider.Embedder().EmbedTexts(ctx, texts)
		if err != nil || len(embeddings) != len(pending) {
			e.logger.Warn("embedding generation failed, loading without embeddings",
				"pending", len(pending), "err", err)
			for _, i := range pending {
				employees[i].Embedding = nil
			}
		} else {
			for n, i := range pending {
				employees[i].Embedding = embeddings[n]
			}
		}
	}

	byId := make(map[string]*core.Employee, len(employees))
	for _, emp := range employees {
		byId[emp.Id] = emp
	}
	idx := index.Build(employees)

	e.mu.Lock()
	e.employees = employees
	e.byId = byId
	e.idx = idx
	e.mu.Unlock()

	e.logger.Info("population loaded", "employees", len(employees), "indexed", idx.Len())
	return nil
}

// FindSimilar ranks the population against a known roster member by cosine
// similarity. Unknown ids and an unbuilt index both yield an empty result,
// not an error. The target itself is always excluded.
func (e *Engine) FindSimilar(ctx context.Context, targetID string, topK int) []core.MatchResult {
	e.mu.RLock()
	target, ok := e.byId[targetID]
	idx := e.idx
	e.mu.RUnlock()

	if !ok {
		e.logger.Debug("similar lookup for unknown id", "id", targetID)
		return []core.MatchResult{}
	}

	hits := idx.Rank(target.Embedding, targetID)
	results := make([]core.MatchResult, 0, topK)
	for _, hit := range hits {
		if hit.Similarity == index.Unrankable {
			continue
		}
		results = append(results, core.MatchResult{
			Employee: hit.Employee,
			Score:    hit.Similarity,
			Reasons:  reason.Explain(target, hit.Employee),
		})
		if topK > 0 && len(results) >= topK {
			break
		}
	}
	return results
}

// Search answers a short query, routing it to name lookup or hybrid
// keyword+semantic ranking. Name-shaped queries never receive hybrid scores.
func (e *Engine) Search(ctx context.Context, query string, topK int) []core.MatchResult {
	return e.SearchWithMonitor(ctx, query, topK, nil)
}

// SearchWithMonitor is Search with observation hooks for each stage.
func (e *Engine) SearchWithMonitor(ctx context.Context, query string, topK int, monitor Monitor) []core.MatchResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	query = strings.TrimSpace(query)
	monitor.Start(query)
	if query == "" {
		monitor.Finish(nil)
		return []core.MatchResult{}
	}

	e.mu.RLock()
	employees := e.employees
	e.mu.RUnlock()

	mode := match.Route(query)
	monitor.AfterRoute(mode)

	if mode == match.ModeName {
		results := match.RankByName(query, employees, topK)
		monitor.AfterNameRanking(results)
		monitor.Finish(results)
		return results
	}

	results := e.hybridSearch(ctx, query, employees, topK, monitor)
	monitor.Finish(results)
	return results
}

// hybridSearch combines keyword and semantic evidence:
//
//	score = Keyword*min(keyword, cap) + Semantic*max(cosine, 0)
//
// clipped to 1.0. Results under the noise floor are dropped. An embedding
// failure zeroes the semantic term for every candidate instead of failing
// the search.
func (e *Engine) hybridSearch(ctx context.Context, query string, employees []*core.Employee, topK int, monitor Monitor) []core.MatchResult {
	queryVec, err := e.provider.Embedder().EmbedText(ctx, query)
	if err != nil {
		e.logger.Warn("query embedding failed, keyword-only search", "err", err)
		queryVec = nil
	}
	monitor.AfterSemanticScoring(len(employees))

	terms := match.ExpandTerms(strings.Fields(strings.ToLower(query)))

	results := make([]core.MatchResult, 0, len(employees))
	for _, emp := range employees {
		keyword, _ := match.Score(query, emp)
		if keyword > match.KeywordCap {
			keyword = match.KeywordCap
		}

		semantic := index.Cosine(queryVec, emp.Embedding)
		if semantic < 0 { // covers Unrankable as well
			semantic = 0
		}

		score := e.weights.Keyword*keyword + e.weights.Semantic*semantic
		if score > 1.0 {
			score = 1.0
		}
		if score < e.weights.NoiseFloor {
			continue
		}

		results = append(results, core.MatchResult{
			Employee: emp,
			Score:    score,
			Reasons:  reason.ExplainQuery(emp, terms),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	monitor.AfterHybridScoring(results)
	return results
}

// Recommendation is the result of a free-text recommendation request: the
// synthesized query-side employee plus the detailed matches found for it.
type Recommendation struct {
	Query   *core.Employee
	Matches []RecommendedMatch
}

// RecommendedMatch is a single recommended candidate with its similarity
// score and on-demand pairwise details.
type RecommendedMatch struct {
	Employee *core.Employee
	Score    float64
	Details  core.DetailedMatch
}

// Recommend matches free-form text (typically a resume) against the
// population. It extracts a structured profile from the text, filters purely
// on cosine similarity (keyword overlap is meaningless for resume-length
// input), and computes a detailed comparison for every retained candidate.
// With useGeneration, per-candidate summaries are generated concurrently on
// the worker pool and joined before returning.
func (e *Engine) Recommend(ctx context.Context, freeText string, topK int, useGeneration bool) *Recommendation {
	freeText = strings.TrimSpace(freeText)
	if freeText == "" {
		return &Recommendation{Matches: []RecommendedMatch{}}
	}

	queryEmp := e.buildQueryEmployee(ctx, freeText)

	e.mu.RLock()
	idx := e.idx
	e.mu.RUnlock()

	queryVec, err := e.provider.Embedder().EmbedText(ctx, freeText)
	if err != nil {
		e.logger.Warn("recommendation embedding failed", "err", err)
		queryVec = nil
	}

	threshold := e.weights.ShortQueryThreshold
	if len(freeText) > e.weights.ResumeLengthChars {
		threshold = e.weights.ResumeThreshold
	}

	hits := idx.Rank(queryVec, "")
	matches := make([]RecommendedMatch, 0, topK)
	for _, hit := range hits {
		if hit.Similarity <= threshold {
			break // hits are sorted descending
		}
		matches = append(matches, RecommendedMatch{
			Employee: hit.Employee,
			Score:    hit.Similarity,
		})
		if topK > 0 && len(matches) >= topK {
			break
		}
	}

	// Fan out detail computation; generation dominates the latency here.
	var wg sync.WaitGroup
	for i := range matches {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			matches[i].Details = e.DetailedMatch(ctx, queryEmp, matches[i].Employee, useGeneration)
		}
		if err := e.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return &Recommendation{Query: queryEmp, Matches: matches}
}

// DetailedMatch computes the pairwise comparison between two employees on
// demand. With useGeneration=false the provider is never consulted and the
// summary is the deterministic fallback. Generated content that fails
// validation is replaced by the same fallback, so the result shape is
// identical on every path.
func (e *Engine) DetailedMatch(ctx context.Context, target, candidate *core.Employee, useGeneration bool) core.DetailedMatch {
	overlap := reason.ComputeOverlap(target, candidate)

	detailed := core.DetailedMatch{
		SharedSkills:      overlap.SharedSkills,
		MatchingProjects:  overlap.MatchingProjects,
		MatchingDomains:   overlap.MatchingDomains,
		TechOverlap:       overlap.TechOverlap,
		SharedPatterns:    overlap.SharedPatterns,
		MatchingSeniority: overlap.MatchingSeniority,
	}

	if useGeneration {
		generated, err := e.provider.MatchGenerator().GenerateMatchContent(ctx, buildMatchPrompt(target, candidate, overlap))
		if err != nil {
			e.logger.Warn("match content generation failed", "candidate", candidate.Id, "err", err)
		} else if !acceptGenerated(generated) {
			e.logger.Warn("generated match content rejected", "candidate", candidate.Id)
		} else {
			detailed.ReasonSummary = strings.TrimSpace(generated.ReasonSummary)
			detailed.CollaborationSuggestions = generated.CollaborationSuggestions
			return detailed
		}
	}

	detailed.ReasonSummary = reason.FallbackSummary(overlap)
	detailed.CollaborationSuggestions = reason.FallbackSuggestions(overlap)
	return detailed
}

// CollaborationSummary produces the roster-level narrative for a target and
// their ranked matches, typically the output of FindSimilar. Unknown targets
// yield an empty summary. With useGeneration=false the provider is never
// consulted; failed or rejected generation falls back to the deterministic
// narrative built from the pairwise overlaps.
func (e *Engine) CollaborationSummary(ctx context.Context, targetID string, matches []core.MatchResult, useGeneration bool) string {
	e.mu.RLock()
	target, ok := e.byId[targetID]
	e.mu.RUnlock()

	if !ok {
		e.logger.Debug("collaboration summary for unknown id", "id", targetID)
		return ""
	}

	if useGeneration && len(matches) > 0 {
		summary, err := e.provider.MatchGenerator().GenerateCollaborationSummary(ctx, buildCollaborationPrompt(target, matches))
		if err != nil {
			e.logger.Warn("collaboration summary generation failed", "target", targetID, "err", err)
		} else if !acceptSummary(summary) {
			e.logger.Warn("generated collaboration summary rejected", "target", targetID)
		} else {
			return strings.TrimSpace(summary)
		}
	}

	return reason.FallbackCollaborationSummary(target, matches)
}

// buildCollaborationPrompt assembles the roster-level generation payload from
// the target and the ranked matches.
func buildCollaborationPrompt(target *core.Employee, matches []core.MatchResult) ai.CollaborationPrompt {
	candidates := make([]ai.RankedCandidate, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, ai.RankedCandidate{
			Card:  profileCard(m.Employee),
			Score: m.Score,
		})
	}
	return ai.CollaborationPrompt{Target: profileCard(target), Candidates: candidates}
}

// buildQueryEmployee synthesizes the query-side employee for free-text
// input. Profile extraction is best effort: on failure the query employee
// keeps its empty profile and matching proceeds on the embedding alone.
func (e *Engine) buildQueryEmployee(ctx context.Context, freeText string) *core.Employee {
	queryEmp := core.NewQueryEmployee("query", "You", "", freeText)

	extracted, err := e.provider.ProfileExtractor().ExtractProfile(ctx, freeText)
	if err != nil {
		e.logger.Warn("profile extraction failed", "err", err)
		return queryEmp
	}

	if extracted.Role != "" {
		queryEmp.Profile.Role = extracted.Role
	}
	if extracted.Seniority != "" {
		queryEmp.Profile.Seniority = extracted.Seniority
	}
	if extracted.Department != "" {
		queryEmp.Profile.Department = extracted.Department
	}
	queryEmp.Profile.Skills = extracted.Skills
	for _, name := range extracted.Projects {
		queryEmp.Profile.Projects = append(queryEmp.Profile.Projects, core.Project{
			Name:        name,
			Description: "",
		})
	}
	return queryEmp
}

// buildMatchPrompt assembles the structured generation payload from the two
// profiles and their computed overlap.
func buildMatchPrompt(target, candidate *core.Employee, overlap reason.Overlap) ai.MatchPrompt {
	return ai.MatchPrompt{
		Target:         profileCard(target),
		Candidate:      profileCard(candidate),
		SharedSkills:   overlap.SharedSkills,
		TechOverlap:    overlap.TechOverlap,
		SharedDomains:  overlap.MatchingProjects,
		SharedPatterns: overlap.SharedPatterns,
	}
}

func profileCard(emp *core.Employee) ai.ProfileCard {
	return ai.ProfileCard{
		Name:     emp.Name,
		Role:     emp.Profile.Role,
		Skills:   emp.Profile.Skills,
		Projects: emp.Profile.ProjectNames(),
	}
}

// synthesizeRawText builds the embedding text for an employee that carries
// no free-form biography.
func synthesizeRawText(emp *core.Employee) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s %s in the %s department.",
		emp.Name, emp.Profile.Seniority, emp.Profile.Role, emp.Profile.Department)

	if emp.Profile.ProfessionalSummary != "" {
		b.WriteByte(' ')
		b.WriteString(emp.Profile.ProfessionalSummary)
	}
	if len(emp.Profile.Skills) > 0 {
		fmt.Fprintf(&b, " Skilled in %s.", strings.Join(emp.Profile.Skills, ", "))
	}
	if len(emp.Profile.Tools) > 0 {
		fmt.Fprintf(&b, " Works with %s.", strings.Join(emp.Profile.Tools, ", "))
	}
	for _, project := range emp.Profile.Projects {
		fmt.Fprintf(&b, " Worked on %s: %s", project.Name, project.Description)
		if len(project.Tech) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(project.Tech, ", "))
		}
		b.WriteByte('.')
	}
	return b.String()
}
