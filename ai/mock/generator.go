package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/piyushtamaskar21/collab-connect/ai"
)

// MockMatchGenerator is a test double for ai.MatchGenerator.
// It allows custom behavior injection via function fields.
// Safe for concurrent use; the engine fans generation out to a worker pool.
type MockMatchGenerator struct {
	// GenerateMatchContentFunc is called by GenerateMatchContent if set.
	// If nil, uses default templated behavior.
	GenerateMatchContentFunc func(ctx context.Context, prompt ai.MatchPrompt) (*ai.GeneratedMatch, error)

	// GenerateCollaborationSummaryFunc is called by GenerateCollaborationSummary
	// if set. If nil, uses default templated behavior.
	GenerateCollaborationSummaryFunc func(ctx context.Context, prompt ai.CollaborationPrompt) (string, error)

	mu        sync.Mutex
	callCount int
}

// NewMockMatchGenerator creates a mock generator with default templated behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockMatchGenerator() *MockMatchGenerator {
	return &MockMatchGenerator{}
}

// GenerateMatchContent builds a deterministic summary from the prompt contents.
func (m *MockMatchGenerator) GenerateMatchContent(ctx context.Context, prompt ai.MatchPrompt) (*ai.GeneratedMatch, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.GenerateMatchContentFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}

	// Default: templated content derived from the overlap so tests can
	// distinguish generated output from fallback output.
	summary := fmt.Sprintf("%s and %s both work with similar technologies.",
		prompt.Target.Name, prompt.Candidate.Name)
	if len(prompt.SharedSkills) > 0 {
		summary = fmt.Sprintf("%s and %s share expertise in %s.",
			prompt.Target.Name, prompt.Candidate.Name,
			strings.Join(prompt.SharedSkills, ", "))
	}

	suggestions := []string{
		fmt.Sprintf("Pair with %s on an upcoming project.", prompt.Candidate.Name),
		"Schedule a knowledge-sharing session on overlapping technologies.",
	}

	return &ai.GeneratedMatch{
		ReasonSummary:            summary,
		CollaborationSuggestions: suggestions,
	}, nil
}

// GenerateCollaborationSummary builds a deterministic narrative naming the
// target and every recommended connection.
func (m *MockMatchGenerator) GenerateCollaborationSummary(ctx context.Context, prompt ai.CollaborationPrompt) (string, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.GenerateCollaborationSummaryFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}

	names := make([]string, 0, len(prompt.Candidates))
	for _, candidate := range prompt.Candidates {
		names = append(names, candidate.Card.Name)
	}
	return fmt.Sprintf("%s can collaborate with %s on shared technical interests.",
		prompt.Target.Name, strings.Join(names, ", ")), nil
}

// CallCount returns the number of times any generation method was called.
func (m *MockMatchGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockMatchGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.GenerateMatchContentFunc = nil
	m.GenerateCollaborationSummaryFunc = nil
}
