package ragmesh

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ragmesh/chunker"
	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/embedding"
	"github.com/hupe1980/ragmesh/extract"
	"github.com/hupe1980/ragmesh/retriever"
)

func TestRAGMesh_EndToEnd(t *testing.T) {
	mesh := New()
	ctx := context.Background()

	// ~1000 chars of two distinct vocabularies: 500/100 windows give 3 chunks
	text := strings.Repeat("alpha ", 84) + strings.Repeat("omega ", 83)
	reports, err := mesh.Ingest(ctx, "sess-1", extract.Document{Name: "doc1.txt", Data: []byte(text)})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.NoError(t, reports[0].Err)
	assert.Equal(t, 3, reports[0].Chunks)

	sess := mesh.Session("sess-1")
	assert.Equal(t, 3, sess.Store.Len())
	for _, rec := range sess.Store.All() {
		assert.Equal(t, "doc1.txt", rec.Source)
	}

	// querying with the middle chunk's own text must surface exactly it
	chunks, err := chunker.Chunk(text, chunker.DefaultSize, chunker.DefaultOverlap)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	r := retriever.New(embedding.NewMockEmbedder(0), sess.Store)
	results, err := r.Search(ctx, chunks[1], 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, chunks[1], results[0].Text)
	assert.Equal(t, "doc1.txt", results[0].Source)

	// chatting appends exactly one exchange per successful respond
	reply, err := mesh.Respond(ctx, "sess-1", "what do the alpha passages say?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
	assert.Equal(t, 2, sess.HistoryLen())

	_, err = mesh.Respond(ctx, "sess-1", "and the omega ones?")
	require.NoError(t, err)
	assert.Equal(t, 4, sess.HistoryLen())
}

func TestRAGMesh_PartialBatchReportedPerDocument(t *testing.T) {
	mesh := New()
	reports, err := mesh.Ingest(context.Background(), "sess-1",
		extract.Document{Name: "ok.txt", Data: []byte(strings.Repeat("fine text ", 30))},
		extract.Document{Name: "noise.bin", Data: []byte{0xff, 0x00, 0xfe}},
	)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.NoError(t, reports[0].Err)
	var extErr *core.ExtractionError
	require.ErrorAs(t, reports[1].Err, &extErr)

	// only the readable document is indexed
	for _, rec := range mesh.Session("sess-1").Store.All() {
		assert.Equal(t, "ok.txt", rec.Source)
	}
}

func TestRAGMesh_SessionsAreIsolated(t *testing.T) {
	mesh := New()
	ctx := context.Background()

	_, err := mesh.Ingest(ctx, "a", extract.Document{Name: "a.txt", Data: []byte(strings.Repeat("alpha text ", 20))})
	require.NoError(t, err)

	assert.Positive(t, mesh.Session("a").Store.Len())
	assert.Zero(t, mesh.Session("b").Store.Len())

	_, err = mesh.Respond(ctx, "a", "a question")
	require.NoError(t, err)
	assert.Equal(t, 2, mesh.Session("a").HistoryLen())
	assert.Zero(t, mesh.Session("b").HistoryLen())
}

func TestRAGMesh_EmptyQueryGuard(t *testing.T) {
	mesh := New()
	_, err := mesh.Respond(context.Background(), "sess-1", "")
	assert.ErrorIs(t, err, core.ErrEmptyQuery)
}

func TestRAGMesh_InvalidChunkConfigSurfaces(t *testing.T) {
	mesh := New(func(o *Options) {
		o.ChunkSize = 100
		o.ChunkOverlap = 100
	})
	_, err := mesh.Ingest(context.Background(), "sess-1", extract.Document{Name: "doc.txt", Data: []byte("text")})
	var cfgErr *core.InvalidChunkConfigError
	require.ErrorAs(t, err, &cfgErr)
}
