// Package retriever ranks stored records against a query by cosine
// similarity. It only ever reads the vector store; retrieval results are
// recomputed per query and never stored.
package retriever

import (
	"context"
	"sort"
	"strings"

	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/embedding"
	"github.com/hupe1980/ragmesh/internal/vecmath"
)

// DefaultTopK is the default number of passages returned per query.
const DefaultTopK = 3

// Retriever embeds queries with the same embedder used at ingestion time and
// scans the store linearly. O(N*D) per query, which is fine at the intended
// scale (single session, thousands of chunks); no approximate index.
type Retriever struct {
	embedder embedding.Embedder
	store    core.VectorStore
}

// New creates a retriever over the given embedder and store. The embedder
// must be the one that produced the stored vectors: embeddings from different
// models are not comparable.
func New(embedder embedding.Embedder, store core.VectorStore) *Retriever {
	return &Retriever{embedder: embedder, store: store}
}

// Search returns the topK most similar records, best first. Ties keep
// insertion order so repeated calls over an unchanged store return the same
// ordering. An empty store yields an empty result, not an error.
func (r *Retriever) Search(ctx context.Context, query string, topK int) ([]core.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, core.ErrEmptyQuery
	}
	if topK <= 0 {
		return nil, core.ErrInvalidTopK
	}

	records := r.store.All()
	if len(records) == 0 {
		return []core.Result{}, nil
	}

	qvec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]core.Result, len(records))
	for i, rec := range records {
		results[i] = core.Result{
			Text:   rec.Text,
			Source: rec.Source,
			Score:  vecmath.Cosine(qvec, rec.Embedding),
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}
