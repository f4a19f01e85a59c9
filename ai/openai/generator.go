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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/piyushtamaskar21/collab-connect/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// MatchGenerator implements ai.MatchGenerator using OpenAI-compatible chat APIs.
type MatchGenerator struct {
	client llms.Model
	logger *slog.Logger
}

// newMatchGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newMatchGenerator(config *ai.Config) (*MatchGenerator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &MatchGenerator{
		client: client,
		logger: slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewMatchGenerator creates a new match generator using the provided configuration.
//
// Returns ai.MatchGenerator interface to enforce abstraction.
func NewMatchGenerator(config *ai.Config) (ai.MatchGenerator, error) {
	return newMatchGenerator(config)
}

// GenerateMatchContent produces a reason summary and collaboration
// suggestions for a target/candidate pair. The response is requested in JSON
// mode; markdown fences are stripped and common JSON defects repaired before
// parsing. A single attempt is made per call: on any failure the caller is
// expected to substitute its deterministic fallback, never to retry.
func (g *MatchGenerator) GenerateMatchContent(ctx context.Context, prompt ai.MatchPrompt) (*ai.GeneratedMatch, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(matchSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildMatchPrompt(prompt)),
			},
		},
	}

	response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.7), llms.WithJSONMode())
	if err != nil {
		g.logger.Error("failed to generate match content", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		g.logger.Debug("no choices returned from model")
		return nil, ErrEmptyResponse
	}

	responseText := strings.TrimSpace(response.Choices[0].Content)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)
	responseText = repairJSON(responseText)

	var result ai.GeneratedMatch
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		g.logger.Warn("error parsing generator response", "response", responseText, "err", err)
		return nil, err
	}

	return &result, nil
}

// GenerateCollaborationSummary produces a roster-level narrative for a target
// and their ranked connections. The response is plain text; a single attempt
// is made per call and the caller falls back on any failure.
func (g *MatchGenerator) GenerateCollaborationSummary(ctx context.Context, prompt ai.CollaborationPrompt) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(collaborationSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildCollaborationPrompt(prompt)),
			},
		},
	}

	response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.7))
	if err != nil {
		g.logger.Error("failed to generate collaboration summary", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		g.logger.Debug("no choices returned from model")
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
