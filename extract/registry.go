package extract

import (
	"context"

	"github.com/hupe1980/ragmesh/core"
)

// Registry dispatches extraction by filename extension. Documents with an
// unregistered extension fail with a typed core.ExtractionError so a wrong
// file type in an ingestion batch is reported per document instead of
// aborting the batch.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry creates a registry with plain-text handling for .txt, .md,
// .markdown and extensionless documents.
func NewRegistry() *Registry {
	text := NewTextExtractor()
	return &Registry{byExt: map[string]Extractor{
		"":          text,
		".txt":      text,
		".md":       text,
		".markdown": text,
	}}
}

// Register adds or replaces the extractor for an extension (including the
// leading dot, lower case).
func (r *Registry) Register(ext string, e Extractor) { r.byExt[ext] = e }

// Extract implements Extractor.
func (r *Registry) Extract(ctx context.Context, doc Document) (string, error) {
	e, ok := r.byExt[doc.Ext()]
	if !ok {
		return "", &core.ExtractionError{Source: doc.Name, Reason: "unsupported document type " + doc.Ext()}
	}
	return e.Extract(ctx, doc)
}
