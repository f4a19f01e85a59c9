package openai

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// stubModel is an in-package llms.Model double that records call counts.
type stubModel struct {
	calls    int
	response string
	noChoice bool
	err      error
}

func (s *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.noChoice {
		return &llms.ContentResponse{}, nil
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: s.response}},
	}, nil
}

func (s *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func newStubExtractor(stub *stubModel) *ProfileExtractor {
	return &ProfileExtractor{client: stub, logger: slog.Default()}
}

func TestExtractProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("parses fenced response", func(t *testing.T) {
		stub := &stubModel{response: "```json\n{\"role\":\"Backend Engineer\",\"skills\":[\"Go\",\"Kafka\"]}\n```"}
		extractor := newStubExtractor(stub)

		profile, err := extractor.ExtractProfile(ctx, "some resume text")
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", profile.Role)
		assert.Equal(t, []string{"Go", "Kafka"}, profile.Skills)
		assert.NotNil(t, profile.Projects)
	})

	t.Run("malformed output fails after a single attempt", func(t *testing.T) {
		stub := &stubModel{response: "this is not json"}
		extractor := newStubExtractor(stub)

		_, err := extractor.ExtractProfile(ctx, "some resume text")
		require.Error(t, err)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("provider error is returned", func(t *testing.T) {
		stub := &stubModel{err: errors.New("service down")}
		extractor := newStubExtractor(stub)

		_, err := extractor.ExtractProfile(ctx, "some resume text")
		require.Error(t, err)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("empty choices", func(t *testing.T) {
		stub := &stubModel{noChoice: true}
		extractor := newStubExtractor(stub)

		_, err := extractor.ExtractProfile(ctx, "some resume text")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}
