// Package ai defines the interfaces to the external AI collaborators:
// embedding generation, match-content generation, and profile extraction.
// Concrete implementations live in subpackages (openai for OpenAI-compatible
// services, mock for tests). None of these services ever participate in the
// ranking decision itself; ranking remains deterministic.
package ai
