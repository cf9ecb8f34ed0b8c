// Package openai provides an Embedder implementation backed by the OpenAI
// Embeddings API. It adapts RAGMesh's Embedder contract onto the official
// client, wrapping failures as core.EmbeddingError so ingestion and retrieval
// can classify them.
package openai

import (
	"context"

	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/embedding"
	"github.com/openai/openai-go"
)

// Options configure the OpenAI embedder.
type Options struct {
	Model     openai.EmbeddingModel
	Dimension int
}

// Embedder wraps the OpenAI Embeddings API behind the generic
// embedding.Embedder interface.
type Embedder struct {
	client *openai.Client
	opts   Options
}

var _ embedding.Embedder = (*Embedder)(nil)

// NewEmbedder creates a new OpenAI embedder using the official client.
func NewEmbedder(optFns ...func(o *Options)) *Embedder {
	client := openai.NewClient()
	return NewEmbedderFromClient(&client, optFns...)
}

// NewEmbedderFromClient creates a new OpenAI embedder from an existing client.
func NewEmbedderFromClient(client *openai.Client, optFns ...func(o *Options)) *Embedder {
	opts := Options{
		Model:     openai.EmbeddingModelTextEmbedding3Small,
		Dimension: 1536,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Embedder{client: client, opts: opts}
}

// Embed implements embedding.Embedder.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch implements embedding.Embedder. Per-item vectors are returned in
// input order regardless of the order the API reports them in.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: e.opts.Model,
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
	})
	if err != nil {
		return nil, &core.EmbeddingError{Model: string(e.opts.Model), Err: err}
	}
	vectors := make([][]float64, len(texts))
	for _, item := range resp.Data {
		if int(item.Index) < len(vectors) {
			vectors[item.Index] = item.Embedding
		}
	}
	return vectors, nil
}

// Dimension implements embedding.Embedder.
func (e *Embedder) Dimension() int { return e.opts.Dimension }

// ModelName implements embedding.Embedder.
func (e *Embedder) ModelName() string { return string(e.opts.Model) }
