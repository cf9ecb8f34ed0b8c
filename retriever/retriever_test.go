package retriever

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/internal/testutil"
)

// fixedEmbedder returns a preset vector for every query, letting tests pin
// scores exactly.
type fixedEmbedder struct {
	vector []float64
	err    error
}

func (f *fixedEmbedder) Embed(context.Context, string) ([]float64, error) {
	return f.vector, f.err
}

func (f *fixedEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = f.vector
	}
	return out, f.err
}

func (f *fixedEmbedder) Dimension() int    { return len(f.vector) }
func (f *fixedEmbedder) ModelName() string { return "fixed" }

func TestRetriever_RanksByCosineDescending(t *testing.T) {
	store := testutil.NewStoreBuilder().
		Add("orthogonal", testutil.Vec(0, 1), "doc1").
		Add("exact", testutil.Vec(1, 0), "doc1").
		Add("diagonal", testutil.Vec(1, 1), "doc2").
		Build()
	r := New(&fixedEmbedder{vector: testutil.Vec(1, 0)}, store)

	results, err := r.Search(context.Background(), "query", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "exact", results[0].Text)
	assert.Equal(t, "diagonal", results[1].Text)
	assert.Equal(t, "orthogonal", results[2].Text)
	assert.InDelta(t, 1.0, results[0].Score, 1e-12)
	assert.InDelta(t, 0.0, results[2].Score, 1e-12)
}

func TestRetriever_TopKBound(t *testing.T) {
	store := testutil.NewStoreBuilder().
		Add("a", testutil.Vec(1, 0), "doc1").
		Add("b", testutil.Vec(0.9, 0.1), "doc1").
		Add("c", testutil.Vec(0.8, 0.2), "doc1").
		Add("d", testutil.Vec(0.7, 0.3), "doc1").
		Build()
	r := New(&fixedEmbedder{vector: testutil.Vec(1, 0)}, store)

	results, err := r.Search(context.Background(), "query", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// topK larger than the store returns everything
	results, err = r.Search(context.Background(), "query", 10)
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestRetriever_TiesKeepInsertionOrder(t *testing.T) {
	store := testutil.NewStoreBuilder().
		Add("first", testutil.Vec(1, 0), "doc1").
		Add("second", testutil.Vec(1, 0), "doc2").
		Add("third", testutil.Vec(2, 0), "doc3"). // same direction, same cosine
		Build()
	r := New(&fixedEmbedder{vector: testutil.Vec(1, 0)}, store)

	for i := 0; i < 5; i++ {
		results, err := r.Search(context.Background(), "query", 3)
		require.NoError(t, err)
		assert.Equal(t, "first", results[0].Text)
		assert.Equal(t, "second", results[1].Text)
		assert.Equal(t, "third", results[2].Text)
	}
}

func TestRetriever_EmptyStoreReturnsEmpty(t *testing.T) {
	r := New(&fixedEmbedder{vector: testutil.Vec(1, 0)}, testutil.NewStoreBuilder().Build())
	results, err := r.Search(context.Background(), "query", 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetriever_Guards(t *testing.T) {
	store := testutil.NewStoreBuilder().Add("a", testutil.Vec(1, 0), "doc1").Build()
	r := New(&fixedEmbedder{vector: testutil.Vec(1, 0)}, store)

	_, err := r.Search(context.Background(), "   ", 3)
	assert.ErrorIs(t, err, core.ErrEmptyQuery)

	_, err = r.Search(context.Background(), "query", 0)
	assert.ErrorIs(t, err, core.ErrInvalidTopK)
}

func TestRetriever_EmbedFailurePropagates(t *testing.T) {
	store := testutil.NewStoreBuilder().Add("a", testutil.Vec(1, 0), "doc1").Build()
	boom := &core.EmbeddingError{Model: "fixed", Err: errors.New("model not loaded")}
	r := New(&fixedEmbedder{err: boom}, store)

	_, err := r.Search(context.Background(), "query", 3)
	var embErr *core.EmbeddingError
	assert.ErrorAs(t, err, &embErr)
}

func TestRetriever_ZeroQueryVectorScoresZero(t *testing.T) {
	store := testutil.NewStoreBuilder().Add("a", testutil.Vec(1, 0), "doc1").Build()
	r := New(&fixedEmbedder{vector: testutil.Vec(0, 0)}, store)

	results, err := r.Search(context.Background(), "query", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Zero(t, results[0].Score)
}
