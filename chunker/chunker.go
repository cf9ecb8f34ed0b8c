// Package chunker splits extracted document text into overlapping fixed-size
// windows, the unit of retrieval indexing.
package chunker

import "github.com/hupe1980/ragmesh/core"

// DefaultSize is the default window size in characters (runes).
const DefaultSize = 500

// DefaultOverlap is the default number of characters shared by adjacent windows.
const DefaultOverlap = 100

// Options configure a Chunker.
type Options struct {
	// Size is the window size in runes. Must be positive.
	Size int
	// Overlap is the number of trailing runes repeated at the start of the
	// next window. Must satisfy 0 <= Overlap < Size: an overlap equal to or
	// larger than the size makes the advance step non-positive and the scan
	// would never terminate, so it is rejected up front.
	Overlap int
}

// Chunker produces overlapping sliding windows over rune sequences. The same
// text always chunks identically for the same parameters; a Chunker holds no
// mutable state and is safe for concurrent use.
type Chunker struct {
	size    int
	overlap int
}

// New creates a chunker, validating the configuration before any work is
// accepted.
func New(optFns ...func(o *Options)) (*Chunker, error) {
	opts := Options{Size: DefaultSize, Overlap: DefaultOverlap}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Size <= 0 || opts.Overlap < 0 || opts.Overlap >= opts.Size {
		return nil, &core.InvalidChunkConfigError{Size: opts.Size, Overlap: opts.Overlap}
	}
	return &Chunker{size: opts.Size, overlap: opts.Overlap}, nil
}

// Size returns the configured window size.
func (c *Chunker) Size() int { return c.size }

// Overlap returns the configured window overlap.
func (c *Chunker) Overlap() int { return c.overlap }

// Chunk splits text into windows of Size runes advancing by Size-Overlap.
// The final window may be shorter than Size; empty text yields no chunks.
func (c *Chunker) Chunk(text string) []string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	step := c.size - c.overlap
	chunks := make([]string, 0, (len(runes)+step-1)/step)
	for i := 0; i < len(runes); i += step {
		end := i + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}

// Chunk is a convenience wrapper constructing a one-shot chunker with
// explicit parameters.
func Chunk(text string, size, overlap int) ([]string, error) {
	c, err := New(func(o *Options) {
		o.Size = size
		o.Overlap = overlap
	})
	if err != nil {
		return nil, err
	}
	return c.Chunk(text), nil
}
