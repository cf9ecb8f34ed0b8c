// Package embedding defines the embedding collaborator contract plus a
// deterministic mock useful for tests and examples. Provider adapters live in
// subpackages (e.g. embedding/openai).
package embedding

import "context"

// Embedder maps text to a fixed-dimension dense vector. Implementations must
// be deterministic for identical input and model configuration, and query
// embeddings are only comparable to record embeddings produced by the same
// embedder.
type Embedder interface {
	// Embed generates the vector for a single text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// EmbedBatch generates vectors for multiple texts. Results align with
	// the input order so per-item results stay individually addressable.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)

	// Dimension returns the vector size produced by the model.
	Dimension() int

	// ModelName returns the embedding model identifier.
	ModelName() string
}
