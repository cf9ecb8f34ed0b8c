package extract

import (
	"context"

	"github.com/hupe1980/ragmesh/core"
)

// TextExtractor decodes UTF-8 plain text. It accepts any document whose bytes
// decode cleanly; binary content fails with a core.ExtractionError.
type TextExtractor struct{}

// NewTextExtractor creates a plain-text extractor.
func NewTextExtractor() *TextExtractor { return &TextExtractor{} }

// Extract implements Extractor.
func (e *TextExtractor) Extract(_ context.Context, doc Document) (string, error) {
	if len(doc.Data) == 0 {
		return "", &core.ExtractionError{Source: doc.Name, Reason: "document is empty"}
	}
	if !validUTF8(doc.Data) {
		return "", &core.ExtractionError{Source: doc.Name, Reason: "not valid UTF-8 text"}
	}
	return string(doc.Data), nil
}
