package core

import "github.com/google/uuid"

// Record is a single embedded chunk of a source document. After it has been
// appended to a VectorStore it must be treated as immutable: neither the text
// nor the embedding is ever updated in place.
type Record struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
	Source    string    `json:"source"`
}

// NewRecord creates a record with a generated ID. The embedding slice is not
// copied here; stores copy it on append so callers cannot mutate stored
// vectors afterwards.
func NewRecord(text string, embedding []float64, source string) Record {
	return Record{ID: NewID(), Text: text, Embedding: embedding, Source: source}
}

// NewID generates a new unique identifier for records and sessions.
func NewID() string { return uuid.NewString() }

// VectorStore is an append-only collection of records sharing a single
// embedding dimensionality. The first appended record pins the dimension;
// appending a record of any other dimension fails with a
// DimensionMismatchError rather than truncating.
//
// All returns a read view valid at the moment of the call: implementations
// must tolerate appends happening concurrently with reads, but a snapshot
// need not reflect records appended after it was taken. Stored vectors must
// not be mutable through the returned records.
type VectorStore interface {
	// Append adds a record. O(1) amortized.
	Append(record Record) error

	// All returns a snapshot of every stored record in insertion order.
	All() []Record

	// Len returns the number of stored records.
	Len() int

	// Dimension returns the pinned embedding dimension, or 0 before the
	// first append.
	Dimension() int
}
