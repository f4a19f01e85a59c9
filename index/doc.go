// Package index provides an in-memory dense vector index over the employee
// population, ranked by cosine similarity.
//
// The index is a positional snapshot: row i holds the embedding of the
// employee at position i in the slice the index was built from. It must be
// fully rebuilt whenever the population changes; it is never patched
// incrementally.
package index
