package chunker

import (
	"errors"
	"strings"
	"testing"

	"github.com/hupe1980/ragmesh/core"
)

func TestChunker_WindowingAndOverlap(t *testing.T) {
	c, err := New(func(o *Options) {
		o.Size = 5
		o.Overlap = 2
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks := c.Chunk("abcdefghij")
	want := []string{"abcde", "defgh", "ghij"}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d (%#v)", len(want), len(chunks), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Fatalf("chunk %d: expected %q, got %q", i, want[i], chunks[i])
		}
	}
}

func TestChunker_DefaultsProduceThreeChunksFor1000Chars(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := strings.Repeat("A", 500) + strings.Repeat("B", 500)
	chunks := c.Chunk(text)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks for 1000 chars at 500/100, got %d", len(chunks))
	}
	if len([]rune(chunks[0])) != 500 || len([]rune(chunks[1])) != 500 {
		t.Fatalf("expected full-size leading windows, got %d and %d", len(chunks[0]), len(chunks[1]))
	}
	// last window starts at 800 and is short, no padding
	if len([]rune(chunks[2])) != 200 {
		t.Fatalf("expected 200-rune tail window, got %d", len([]rune(chunks[2])))
	}
	// adjacent windows share the configured overlap
	if chunks[0][400:] != chunks[1][:100] {
		t.Fatal("expected 100-char overlap between windows 0 and 1")
	}
}

func TestChunker_InvalidConfigurationRejected(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		overlap int
	}{
		{"overlap equals size", 100, 100},
		{"overlap exceeds size", 100, 150},
		{"zero size", 0, 0},
		{"negative overlap", 100, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Chunk("some text", tc.size, tc.overlap)
			if err == nil {
				t.Fatal("expected configuration error")
			}
			var cfgErr *core.InvalidChunkConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected InvalidChunkConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestChunker_EmptyTextYieldsNoChunks(t *testing.T) {
	c, _ := New()
	if chunks := c.Chunk(""); chunks != nil {
		t.Fatalf("expected no chunks for empty text, got %#v", chunks)
	}
}

func TestChunker_ShortTextSingleChunk(t *testing.T) {
	c, _ := New()
	chunks := c.Chunk("short")
	if len(chunks) != 1 || chunks[0] != "short" {
		t.Fatalf("expected single identity chunk, got %#v", chunks)
	}
}

func TestChunker_RuneSafety(t *testing.T) {
	// multi-byte runes must never be split mid-encoding
	c, err := New(func(o *Options) {
		o.Size = 4
		o.Overlap = 1
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := "héllö wörld émoji ☃ snow"
	for i, chunk := range c.Chunk(text) {
		if !strings.Contains(text, chunk) {
			t.Fatalf("chunk %d %q is not a substring of the input", i, chunk)
		}
	}
}

func TestChunker_Deterministic(t *testing.T) {
	c, _ := New(func(o *Options) {
		o.Size = 7
		o.Overlap = 3
	})
	text := strings.Repeat("deterministic ", 40)
	first := c.Chunk(text)
	second := c.Chunk(text)
	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("chunk %d differs between runs", i)
		}
	}
}

func TestChunker_CoverageNoGaps(t *testing.T) {
	c, _ := New(func(o *Options) {
		o.Size = 10
		o.Overlap = 4
	})
	text := strings.Repeat("0123456789", 13)
	chunks := c.Chunk(text)
	var rebuilt strings.Builder
	step := c.Size() - c.Overlap()
	for i, chunk := range chunks {
		if i == len(chunks)-1 {
			rebuilt.WriteString(chunk)
			continue
		}
		rebuilt.WriteString(chunk[:step])
	}
	if rebuilt.String() != text {
		t.Fatal("concatenated window starts do not rebuild the input")
	}
}
