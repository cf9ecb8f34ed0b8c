// Package ragmesh provides a high-level façade over the retrieval-augmented
// conversation core (ingestion, vector search and context-assembling chat)
// enabling rapid construction of local RAG applications. Most applications
// interact with this package by:
//  1. Creating a RAGMesh via New() (optionally overriding the default mock
//     collaborators with real embedding / completion providers)
//  2. Ingesting documents into a session (Ingest)
//  3. Asking questions against that session (Respond)
//
// The façade delegates the pipeline stages to the index, retriever and chat
// packages while keeping setup and usage ergonomics concise. All defaults are
// safe for local development and testing; production deployments supply real
// provider adapters (embedding/openai, model/openai, model/anthropic) and a
// structured logger.
package ragmesh

import (
	"context"

	"github.com/hupe1980/ragmesh/chat"
	"github.com/hupe1980/ragmesh/chunker"
	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/embedding"
	"github.com/hupe1980/ragmesh/extract"
	"github.com/hupe1980/ragmesh/index"
	"github.com/hupe1980/ragmesh/logging"
	"github.com/hupe1980/ragmesh/model"
	"github.com/hupe1980/ragmesh/retriever"
	"github.com/hupe1980/ragmesh/session"
)

// Options configures the RAGMesh instance.
type Options struct {
	// Embedder maps text to vectors for both ingestion and retrieval. The
	// same embedder serves both sides; vectors from different models are
	// not comparable. Defaults to the deterministic mock embedder.
	Embedder embedding.Embedder

	// Model is the completion engine answering assembled prompts. Defaults
	// to the mock model.
	Model model.Model

	// Extractor turns uploaded documents into plain text. Defaults to the
	// extension registry (plain text and markdown).
	Extractor extract.Extractor

	// ChunkSize and ChunkOverlap configure the ingestion sliding window.
	ChunkSize    int
	ChunkOverlap int

	// TopK is the number of passages retrieved per query.
	TopK int

	// Temperature is the default sampling temperature for completions.
	Temperature float64

	// SystemDirective is prepended to the retrieved context in every
	// system message.
	SystemDirective string

	// IngestConcurrency bounds parallel document ingestion within a batch
	// (1 = strictly sequential reference behavior).
	IngestConcurrency int

	// Progress, when non-nil, receives ingestion progress events. The core
	// never blocks on a slow consumer.
	Progress chan<- index.Event

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// RAGMesh is the high-level façade aggregating sessions, ingestion and chat.
type RAGMesh struct {
	opts     Options
	sessions *session.InMemoryStore
}

// New creates a new RAGMesh instance with optional overrides. Any unset
// collaborator is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *RAGMesh {
	opts := Options{
		Embedder:          embedding.NewMockEmbedder(0),
		Model:             model.NewMockModel(),
		Extractor:         extract.NewRegistry(),
		ChunkSize:         chunker.DefaultSize,
		ChunkOverlap:      chunker.DefaultOverlap,
		TopK:              retriever.DefaultTopK,
		Temperature:       chat.DefaultTemperature,
		SystemDirective:   chat.DefaultSystemDirective,
		IngestConcurrency: 1,
		Logger:            logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &RAGMesh{opts: opts, sessions: session.NewInMemoryStore()}
}

// Session returns the session for the given ID, creating it lazily with a
// fresh vector store.
func (m *RAGMesh) Session(sessionID string) *core.Session {
	return m.sessions.Get(sessionID)
}

// Ingest indexes the given documents into the session's vector store. Each
// document is processed independently; the returned reports align with the
// input order and carry per-document outcomes.
func (m *RAGMesh) Ingest(ctx context.Context, sessionID string, docs ...extract.Document) ([]index.Report, error) {
	sess := m.sessions.Get(sessionID)
	ix, err := index.New(sess.Store, m.opts.Extractor, m.opts.Embedder, func(o *index.Options) {
		o.ChunkSize = m.opts.ChunkSize
		o.ChunkOverlap = m.opts.ChunkOverlap
		o.Concurrency = m.opts.IngestConcurrency
		o.Progress = m.opts.Progress
		o.Logger = m.opts.Logger
	})
	if err != nil {
		return nil, err
	}
	return ix.IngestAll(ctx, docs), nil
}

// Respond answers a query against the session: retrieve the most relevant
// passages, assemble them with the system directive and the session history,
// call the completion engine and append the exchange to the history.
func (m *RAGMesh) Respond(ctx context.Context, sessionID, query string) (string, error) {
	return m.engine(sessionID).Respond(ctx, query)
}

// RespondWith is Respond with an explicit sampling temperature for this call.
func (m *RAGMesh) RespondWith(ctx context.Context, sessionID, query string, temperature float64) (string, error) {
	return m.engine(sessionID).RespondWith(ctx, query, temperature)
}

func (m *RAGMesh) engine(sessionID string) *chat.Engine {
	sess := m.sessions.Get(sessionID)
	r := retriever.New(m.opts.Embedder, sess.Store)
	return chat.New(m.opts.Model, r, sess, func(o *chat.Options) {
		o.TopK = m.opts.TopK
		o.SystemDirective = m.opts.SystemDirective
		o.Temperature = m.opts.Temperature
		o.Logger = m.opts.Logger
	})
}
