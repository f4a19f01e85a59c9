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

// ProfileExtractor implements ai.ProfileExtractor using OpenAI-compatible chat APIs.
type ProfileExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// newProfileExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newProfileExtractor(config *ai.Config) (*ProfileExtractor, error) {
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

	return &ProfileExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewProfileExtractor creates a new profile extractor using the provided configuration.
//
// Returns ai.ProfileExtractor interface to enforce abstraction.
func NewProfileExtractor(config *ai.Config) (ai.ProfileExtractor, error) {
	return newProfileExtractor(config)
}

// ExtractProfile derives a structured profile from free text using an LLM.
// A single attempt is made per call: malformed output is an error the caller
// degrades on, never a reason to re-ask the provider.
func (e *ProfileExtractor) ExtractProfile(ctx context.Context, text string) (*ai.ExtractedProfile, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(extractionSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		e.logger.Error("failed to generate content", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		e.logger.Debug("no choices returned from model")
		return nil, ErrEmptyResponse
	}

	responseText := strings.TrimSpace(response.Choices[0].Content)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)
	responseText = repairJSON(responseText)

	var result ai.ExtractedProfile
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		e.logger.Warn("error parsing extractor response", "response", responseText, "err", err)
		return nil, err
	}

	if result.Skills == nil {
		result.Skills = []string{}
	}
	if result.Projects == nil {
		result.Projects = []string{}
	}
	return &result, nil
}
