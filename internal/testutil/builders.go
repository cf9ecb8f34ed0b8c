package testutil

import (
	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/vectorstore"
)

// Vec builds a float64 vector from its arguments, keeping test tables compact.
func Vec(vals ...float64) []float64 { return vals }

// Record constructs a record with a fixed ID derived from the text. Stable
// IDs keep test failure output readable.
func Record(text string, embedding []float64, source string) core.Record {
	return core.Record{ID: "rec-" + text, Text: text, Embedding: embedding, Source: source}
}

// StoreBuilder helps construct populated in-memory vector stores for tests.
// Example:
//
//	store := NewStoreBuilder(t).Add("a", Vec(1, 0), "doc1").Add("b", Vec(0, 1), "doc2").Build()
type StoreBuilder struct {
	records []core.Record
}

// NewStoreBuilder creates a new builder.
func NewStoreBuilder() *StoreBuilder {
	return &StoreBuilder{}
}

// Add appends a record to the resulting store (chainable).
func (b *StoreBuilder) Add(text string, embedding []float64, source string) *StoreBuilder {
	b.records = append(b.records, Record(text, embedding, source))
	return b
}

// Build returns a populated *vectorstore.InMemoryStore. Appends are expected
// to succeed; a dimension mismatch in test fixtures panics immediately so the
// broken fixture is obvious.
func (b *StoreBuilder) Build() *vectorstore.InMemoryStore {
	store := vectorstore.NewInMemoryStore()
	for _, rec := range b.records {
		if err := store.Append(rec); err != nil {
			panic(err)
		}
	}
	return store
}

// Session constructs a session with the given ID over a fresh store.
func Session(id string) *core.Session {
	return core.NewSession(id, vectorstore.NewInMemoryStore())
}
