package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// MatchGenerator produces prose match content for a target/candidate pair.
// The generated text is advisory only: callers must validate it and fall back
// to deterministic explanations when the call fails or the output is rejected.
// Implementations must be thread-safe for concurrent use.
type MatchGenerator interface {
	// GenerateMatchContent produces a short reason summary and a short list
	// of collaboration suggestions for the pair described by the prompt.
	// Returns an error if generation fails or the response cannot be parsed.
	GenerateMatchContent(ctx context.Context, prompt MatchPrompt) (*GeneratedMatch, error)

	// GenerateCollaborationSummary produces a roster-level narrative for a
	// target employee and their ranked connections: why they were selected
	// and how the group can collaborate. Plain text, not JSON.
	GenerateCollaborationSummary(ctx context.Context, prompt CollaborationPrompt) (string, error)
}

// ProfileExtractor derives a best-effort structured profile from free text,
// such as pasted resume content. The result is used only to build a
// query-side employee for ranking; it is never persisted into the population.
// Implementations must be thread-safe for concurrent use.
type ProfileExtractor interface {
	// ExtractProfile analyzes free text and extracts role, seniority,
	// department, skills, and project names. Missing fields are returned
	// empty rather than causing an error.
	ExtractProfile(ctx context.Context, text string) (*ExtractedProfile, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages its service instances, ensuring they share
// configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// MatchGenerator returns the match-content generation service.
	// The returned MatchGenerator is safe for concurrent use.
	MatchGenerator() MatchGenerator

	// ProfileExtractor returns the profile extraction service.
	// The returned ProfileExtractor is safe for concurrent use.
	ProfileExtractor() ProfileExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
