package embedding

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/internal/vecmath"
)

// MockEmbedder is a lightweight in-memory Embedder for tests and examples.
// It hashes word tokens into a fixed number of buckets and L2-normalizes the
// result, so identical text always embeds identically and texts sharing
// vocabulary score higher under cosine similarity than unrelated ones.
type MockEmbedder struct {
	dimension int
	failWith  error
}

// NewMockEmbedder constructs a mock embedder producing vectors of the given
// dimension (a small default is used when dimension <= 0).
func NewMockEmbedder(dimension int) *MockEmbedder {
	if dimension <= 0 {
		dimension = 64
	}
	return &MockEmbedder{dimension: dimension}
}

// FailWith makes every subsequent call fail with err (nil restores normal
// operation). Useful for exercising embedding failure paths.
func (m *MockEmbedder) FailWith(err error) { m.failWith = err }

// Embed implements Embedder.
func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if m.failWith != nil {
		return nil, &core.EmbeddingError{Model: m.ModelName(), Err: m.failWith}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec := make([]float64, m.dimension)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		vec[int(h.Sum32())%m.dimension]++
	}
	if n := vecmath.Norm(vec); n > 0 {
		for i := range vec {
			vec[i] /= n
		}
	}
	return vec, nil
}

// EmbedBatch implements Embedder.
func (m *MockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vec, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// Dimension implements Embedder.
func (m *MockEmbedder) Dimension() int { return m.dimension }

// ModelName implements Embedder.
func (m *MockEmbedder) ModelName() string { return "mock-hash-embedder" }
