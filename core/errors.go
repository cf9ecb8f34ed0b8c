package core

import (
	"errors"
	"fmt"
)

// Guard condition sentinels checked before any work begins.
var (
	// ErrEmptyQuery is returned when a chat or retrieval query is blank.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrModelNotReady is returned when the completion engine has not been
	// configured or initialized.
	ErrModelNotReady = errors.New("completion model not ready")

	// ErrInvalidTopK is returned when a retrieval limit is not positive.
	ErrInvalidTopK = errors.New("topK must be positive")
)

// ExtractionError classifies a document that could not be turned into plain
// text (unsupported type, undecodable bytes). Ingestion of that document is
// skipped; other documents in the batch continue.
type ExtractionError struct {
	Source string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %q: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("extract %q: %s", e.Source, e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// EmbeddingError classifies an embedding collaborator failure. It aborts the
// current chunk or query but never corrupts the store: chunks embedded before
// the failure stay appended (documented partial-success policy).
type EmbeddingError struct {
	Model string
	Err   error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding (%s): %v", e.Model, e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// CompletionError classifies a completion engine failure. A failed completion
// appends nothing to the chat history.
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion (%s): %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// InvalidChunkConfigError rejects a chunker configuration whose advance step
// would be non-positive (overlap >= size) or whose size is not positive. It
// is reported before any chunking work begins.
type InvalidChunkConfigError struct {
	Size    int
	Overlap int
}

func (e *InvalidChunkConfigError) Error() string {
	return fmt.Sprintf("invalid chunk configuration: size=%d overlap=%d (require size > 0 and 0 <= overlap < size)", e.Size, e.Overlap)
}

// DimensionMismatchError rejects a record whose embedding dimension differs
// from the store's pinned dimension. Mismatched vectors are rejected, never
// truncated.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: store holds %d-dimensional vectors, got %d", e.Want, e.Got)
}
