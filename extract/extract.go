// Package extract turns user-supplied document files into plain text. The
// Extractor interface is the boundary the indexer depends on; built-in
// implementations cover plain-text formats and fail with a typed
// core.ExtractionError on anything they cannot decode.
package extract

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Document is a raw uploaded file: a name used as the retrieval source tag
// plus its bytes. No file or network I/O happens inside the core; callers
// read the bytes however they like.
type Document struct {
	Name string
	Data []byte
}

// Extractor converts a document into plain text. Implementations must report
// malformed or unsupported content as a *core.ExtractionError rather than an
// arbitrary error type so ingestion can classify per-document failures.
type Extractor interface {
	Extract(ctx context.Context, doc Document) (string, error)
}

// Ext returns the lower-cased filename extension of the document, including
// the leading dot.
func (d Document) Ext() string {
	return strings.ToLower(filepath.Ext(d.Name))
}

// validUTF8 reports whether data decodes as UTF-8 text.
func validUTF8(data []byte) bool { return utf8.Valid(data) }
