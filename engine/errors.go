package engine

import "errors"

var (
	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrInvalidPoolSize is returned for a non-positive worker pool size.
	ErrInvalidPoolSize = errors.New("pool size must be positive")
)
