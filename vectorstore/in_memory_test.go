package vectorstore

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/hupe1980/ragmesh/core"
)

// Interface compliance (compile-time assertion)
var _ core.VectorStore = (*InMemoryStore)(nil)

func TestInMemoryStore_AppendAndAll(t *testing.T) {
	store := NewInMemoryStore()
	if store.Len() != 0 || store.Dimension() != 0 {
		t.Fatalf("expected empty store, got len=%d dim=%d", store.Len(), store.Dimension())
	}
	for i := 0; i < 3; i++ {
		rec := core.NewRecord(fmt.Sprintf("chunk-%d", i), []float64{float64(i), 1}, "doc1")
		if err := store.Append(rec); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", store.Len())
	}
	if store.Dimension() != 2 {
		t.Fatalf("expected dimension 2, got %d", store.Dimension())
	}
	// insertion order preserved
	all := store.All()
	for i, rec := range all {
		if rec.Text != fmt.Sprintf("chunk-%d", i) {
			t.Fatalf("record %d out of order: %q", i, rec.Text)
		}
	}
}

func TestInMemoryStore_DimensionMismatchRejected(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Append(core.NewRecord("a", []float64{1, 2, 3}, "doc")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	err := store.Append(core.NewRecord("b", []float64{1, 2}, "doc"))
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
	var dimErr *core.DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionMismatchError, got %T: %v", err, err)
	}
	if dimErr.Want != 3 || dimErr.Got != 2 {
		t.Fatalf("unexpected mismatch detail: %+v", dimErr)
	}
	if store.Len() != 1 {
		t.Fatalf("rejected append must not be stored, len=%d", store.Len())
	}
}

func TestInMemoryStore_EmptyEmbeddingRejected(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Append(core.NewRecord("a", nil, "doc")); err == nil {
		t.Fatal("expected error for empty embedding")
	}
}

func TestInMemoryStore_AppendCopiesVector(t *testing.T) {
	store := NewInMemoryStore()
	vec := []float64{1, 0}
	if err := store.Append(core.NewRecord("a", vec, "doc")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	vec[0] = 99
	if got := store.All()[0].Embedding[0]; got != 1 {
		t.Fatalf("stored vector mutated through caller slice: %v", got)
	}
}

func TestInMemoryStore_AllReturnsSnapshot(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.Append(core.NewRecord("a", []float64{1}, "doc"))
	snapshot := store.All()
	_ = store.Append(core.NewRecord("b", []float64{2}, "doc"))
	if len(snapshot) != 1 {
		t.Fatalf("snapshot must not grow with later appends, len=%d", len(snapshot))
	}
}

func TestInMemoryStore_ConcurrentAppendsAndReads(t *testing.T) {
	store := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := store.Append(core.NewRecord(fmt.Sprintf("c-%d", i), []float64{float64(i), 1}, "doc")); err != nil {
				t.Errorf("append error: %v", err)
			}
			_ = store.All()
			_ = store.Len()
		}(i)
	}
	wg.Wait()
	if store.Len() != 50 {
		t.Fatalf("expected 50 records after concurrent appends, got %d", store.Len())
	}
}
