package mock

import (
	"context"
	"sync"
	"testing"

	"github.com/piyushtamaskar21/collab-connect/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockMatchGenerator_Defaults(t *testing.T) {
	generator := NewMockMatchGenerator()
	ctx := context.Background()

	result, err := generator.GenerateMatchContent(ctx, ai.MatchPrompt{
		Target:       ai.ProfileCard{Name: "Jane"},
		Candidate:    ai.ProfileCard{Name: "John"},
		SharedSkills: []string{"Kafka"},
	})
	require.NoError(t, err)
	assert.Contains(t, result.ReasonSummary, "Kafka")

	summary, err := generator.GenerateCollaborationSummary(ctx, ai.CollaborationPrompt{
		Target: ai.ProfileCard{Name: "Jane"},
		Candidates: []ai.RankedCandidate{
			{Card: ai.ProfileCard{Name: "John"}, Score: 0.9},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, summary, "Jane")
	assert.Contains(t, summary, "John")

	assert.Equal(t, 2, generator.CallCount())
}

func TestMockMatchGenerator_Reset(t *testing.T) {
	generator := NewMockMatchGenerator()
	generator.GenerateMatchContentFunc = func(ctx context.Context, prompt ai.MatchPrompt) (*ai.GeneratedMatch, error) {
		return &ai.GeneratedMatch{}, nil
	}
	_, _ = generator.GenerateMatchContent(context.Background(), ai.MatchPrompt{})

	generator.Reset()
	assert.Zero(t, generator.CallCount())
	assert.Nil(t, generator.GenerateMatchContentFunc)
	assert.Nil(t, generator.GenerateCollaborationSummaryFunc)
}

func TestMockMatchGenerator_ConcurrentReset(t *testing.T) {
	generator := NewMockMatchGenerator()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = generator.GenerateMatchContent(context.Background(), ai.MatchPrompt{})
			}
		}()
	}
	for i := 0; i < 20; i++ {
		generator.Reset()
	}
	wg.Wait()
}
