package openai

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/piyushtamaskar21/collab-connect/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubGenerator(stub *stubModel) *MatchGenerator {
	return &MatchGenerator{client: stub, logger: slog.Default()}
}

func TestGenerateMatchContent(t *testing.T) {
	ctx := context.Background()

	t.Run("parses repaired response", func(t *testing.T) {
		stub := &stubModel{response: `{"reasonSummary": "Both work with Kafka.", suggestions": []}`}
		// the malformed "suggestions" key is repaired but unknown, so it is ignored
		generator := newStubGenerator(stub)

		result, err := generator.GenerateMatchContent(ctx, ai.MatchPrompt{})
		require.NoError(t, err)
		assert.Equal(t, "Both work with Kafka.", result.ReasonSummary)
	})

	t.Run("malformed output fails after a single attempt", func(t *testing.T) {
		stub := &stubModel{response: "no json here"}
		generator := newStubGenerator(stub)

		_, err := generator.GenerateMatchContent(ctx, ai.MatchPrompt{})
		require.Error(t, err)
		assert.Equal(t, 1, stub.calls)
	})
}

func TestGenerateCollaborationSummary(t *testing.T) {
	ctx := context.Background()
	prompt := ai.CollaborationPrompt{
		Target: ai.ProfileCard{Name: "Jane Smith", Role: "Data Engineer"},
		Candidates: []ai.RankedCandidate{
			{Card: ai.ProfileCard{Name: "John Doe", Role: "Backend Engineer"}, Score: 0.91},
		},
	}

	t.Run("returns trimmed narrative", func(t *testing.T) {
		stub := &stubModel{response: "  Jane and John should pair on Kafka streaming work.  "}
		generator := newStubGenerator(stub)

		summary, err := generator.GenerateCollaborationSummary(ctx, prompt)
		require.NoError(t, err)
		assert.Equal(t, "Jane and John should pair on Kafka streaming work.", summary)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("provider error is returned", func(t *testing.T) {
		stub := &stubModel{err: errors.New("service down")}
		generator := newStubGenerator(stub)

		_, err := generator.GenerateCollaborationSummary(ctx, prompt)
		assert.Error(t, err)
	})

	t.Run("empty choices", func(t *testing.T) {
		stub := &stubModel{noChoice: true}
		generator := newStubGenerator(stub)

		_, err := generator.GenerateCollaborationSummary(ctx, prompt)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}
