package session

import (
	"fmt"
	"sync"
	"testing"
)

func TestInMemoryStore_LazyCreate(t *testing.T) {
	store := NewInMemoryStore()
	if store.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", store.Len())
	}
	sess := store.Get("s1")
	if sess == nil || sess.ID != "s1" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.Store == nil {
		t.Fatal("expected session to own a fresh vector store")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", store.Len())
	}
}

func TestInMemoryStore_GetReturnsSameInstance(t *testing.T) {
	store := NewInMemoryStore()
	a := store.Get("s1")
	b := store.Get("s1")
	if a != b {
		t.Fatal("expected the same session instance for the same ID")
	}
	if store.Get("s2") == a {
		t.Fatal("different IDs must map to different sessions")
	}
}

func TestInMemoryStore_ConcurrentGet(t *testing.T) {
	store := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Get(fmt.Sprintf("s%d", i%4))
		}(i)
	}
	wg.Wait()
	if store.Len() != 4 {
		t.Fatalf("expected 4 sessions, got %d", store.Len())
	}
}
