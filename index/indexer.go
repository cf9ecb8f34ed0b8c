package index

import (
	"context"
	"sync"

	"github.com/hupe1980/ragmesh/chunker"
	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/embedding"
	"github.com/hupe1980/ragmesh/extract"
	"github.com/hupe1980/ragmesh/logging"
)

// Report is the per-document outcome of a batch ingestion. Chunks counts the
// records actually appended to the store, which may be non-zero even when Err
// is set (partial success: chunks embedded before a failure stay stored).
type Report struct {
	Source string
	Chunks int
	Err    error
}

// Stage identifies the ingestion phase a progress event refers to.
type Stage string

// Ingestion stages reported through progress events.
const (
	StageExtract Stage = "extract"
	StageChunk   Stage = "chunk"
	StageEmbed   Stage = "embed"
	StageDone    Stage = "done"
)

// Event is a progress notification emitted while a document is ingested.
// Chunk and Total are only meaningful during StageEmbed.
type Event struct {
	Source string
	Stage  Stage
	Chunk  int
	Total  int
}

// Options configure an Indexer.
type Options struct {
	// ChunkSize and ChunkOverlap configure the sliding window (defaults
	// 500/100).
	ChunkSize    int
	ChunkOverlap int

	// Concurrency bounds how many documents of a batch are ingested in
	// parallel. The default of 1 preserves the sequential reference
	// behavior; higher values use a bounded worker pool while keeping each
	// store append atomic per chunk.
	Concurrency int

	// Progress, when non-nil, receives ingestion events. Sends never block:
	// events are dropped when the consumer lags, so a slow presentation
	// layer cannot stall the pipeline.
	Progress chan<- Event

	// Logger receives structured ingestion logs. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Indexer populates a vector store from raw documents. Chunks within one
// document are embedded sequentially to keep a stable, debuggable record
// order; parallelism applies across documents only.
type Indexer struct {
	store     core.VectorStore
	extractor extract.Extractor
	embedder  embedding.Embedder
	chunker   *chunker.Chunker
	opts      Options
}

// New creates an indexer writing to store. It fails fast on an invalid chunk
// configuration before any document is touched.
func New(store core.VectorStore, extractor extract.Extractor, embedder embedding.Embedder, optFns ...func(o *Options)) (*Indexer, error) {
	opts := Options{
		ChunkSize:    chunker.DefaultSize,
		ChunkOverlap: chunker.DefaultOverlap,
		Concurrency:  1,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	c, err := chunker.New(func(o *chunker.Options) {
		o.Size = opts.ChunkSize
		o.Overlap = opts.ChunkOverlap
	})
	if err != nil {
		return nil, err
	}
	return &Indexer{store: store, extractor: extractor, embedder: embedder, chunker: c, opts: opts}, nil
}

// Ingest processes a single document: extract, chunk, embed chunk by chunk,
// append each record tagged with the document name. It returns the number of
// records appended; on error that count reflects the chunks stored before the
// failure.
func (ix *Indexer) Ingest(ctx context.Context, doc extract.Document) (int, error) {
	ix.emit(Event{Source: doc.Name, Stage: StageExtract})

	text, err := ix.extractor.Extract(ctx, doc)
	if err != nil {
		ix.opts.Logger.Warn("extraction failed", "source", doc.Name, "error", err)
		return 0, err
	}

	ix.emit(Event{Source: doc.Name, Stage: StageChunk})
	chunks := ix.chunker.Chunk(text)

	added := 0
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		ix.emit(Event{Source: doc.Name, Stage: StageEmbed, Chunk: i + 1, Total: len(chunks)})

		vector, err := ix.embedder.Embed(ctx, chunk)
		if err != nil {
			ix.opts.Logger.Error("embedding failed", "source", doc.Name, "chunk", i, "error", err)
			return added, err
		}
		if err := ix.store.Append(core.NewRecord(chunk, vector, doc.Name)); err != nil {
			return added, err
		}
		added++
	}

	ix.emit(Event{Source: doc.Name, Stage: StageDone, Chunk: added, Total: len(chunks)})
	ix.opts.Logger.Info("document ingested", "source", doc.Name, "chunks", added)
	return added, nil
}

// IngestAll processes every document, isolating failures: the returned
// reports align with the input order and each carries its own outcome.
func (ix *Indexer) IngestAll(ctx context.Context, docs []extract.Document) []Report {
	reports := make([]Report, len(docs))
	if ix.opts.Concurrency == 1 {
		for i, doc := range docs {
			count, err := ix.Ingest(ctx, doc)
			reports[i] = Report{Source: doc.Name, Chunks: count, Err: err}
		}
		return reports
	}

	sem := make(chan struct{}, ix.opts.Concurrency)
	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, doc extract.Document) {
			defer wg.Done()
			defer func() { <-sem }()
			count, err := ix.Ingest(ctx, doc)
			reports[i] = Report{Source: doc.Name, Chunks: count, Err: err}
		}(i, doc)
	}
	wg.Wait()
	return reports
}

// emit forwards a progress event without ever blocking the pipeline.
func (ix *Indexer) emit(ev Event) {
	if ix.opts.Progress == nil {
		return
	}
	select {
	case ix.opts.Progress <- ev:
	default:
	}
}
