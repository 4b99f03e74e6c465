package sokocache

import (
	"path/filepath"
	"sync"
	"testing"
)

func TestFlushOnceSavesExactlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.gob")
	c := New()
	c.Store(1, CachedSolution{Boxes: []int{1}, LURD: "R"})
	f := NewFlushOnce(c, path)

	if err := f.Flush(); err != nil {
		t.Fatalf("first Flush: %v", err)
	}

	// A second Store after the first flush must not appear in the file,
	// since Flush only ever saves once.
	c.Store(2, CachedSolution{Boxes: []int{2}, LURD: "L"})
	if err := f.Flush(); err != nil {
		t.Fatalf("second Flush: %v", err)
	}

	loaded := New()
	if err := loaded.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (only the pre-flush entry)", loaded.Len())
	}
}

func TestFlushOnceConcurrentCallersAllReturn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.gob")
	c := New()
	f := NewFlushOnce(c, path)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Flush()
		}()
	}
	wg.Wait()
}
