package mock

import (
	"context"
	"strings"

	"github.com/piyushtamaskar21/collab-connect/ai"
)

// MockProfileExtractor is a test double for ai.ProfileExtractor.
// It allows custom behavior injection via function fields.
type MockProfileExtractor struct {
	// ExtractProfileFunc is called by ExtractProfile if set.
	// If nil, uses default simple word extraction.
	ExtractProfileFunc func(ctx context.Context, text string) (*ai.ExtractedProfile, error)

	callCount int
}

// NewMockProfileExtractor creates a mock profile extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockProfileExtractor() *MockProfileExtractor {
	return &MockProfileExtractor{}
}

// ExtractProfile extracts a simple mock profile from text.
// Default behavior: treats longer words in the text as skills.
func (m *MockProfileExtractor) ExtractProfile(ctx context.Context, text string) (*ai.ExtractedProfile, error) {
	m.callCount++

	if m.ExtractProfileFunc != nil {
		return m.ExtractProfileFunc(ctx, text)
	}

	// Default: extract simple skills from words
	words := strings.Fields(strings.ToLower(text))
	skills := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if len(word) < 4 {
			continue
		}
		skills = append(skills, word)
		if len(skills) >= 5 { // Limit to 5 skills
			break
		}
	}

	return &ai.ExtractedProfile{
		Role:     "Engineer",
		Skills:   skills,
		Projects: []string{},
	}, nil
}

// CallCount returns the number of times ExtractProfile was called.
func (m *MockProfileExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockProfileExtractor) Reset() {
	m.callCount = 0
	m.ExtractProfileFunc = nil
}
