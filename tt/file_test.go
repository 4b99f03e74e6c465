package tt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hansschaa/JSoko-2.0/boardpos"
)

func TestSaveAndLoadFileRoundTrip(t *testing.T) {
	z := boardpos.NewZobristTable(20)
	table := New(4)
	table.PutIfAbsent(boardpos.NewRoot([]int{1, 2, 3}, false, z))
	table.PutIfAbsent(boardpos.NewRoot([]int{7, 8, 9}, true, z))

	path := filepath.Join(t.TempDir(), "snapshot.gob")
	if err := table.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	reloaded := New(4)
	if err := reloaded.LoadFromFile(path, z); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if reloaded.Count() != 2 {
		t.Fatalf("reloaded Count() = %d, want 2", reloaded.Count())
	}
}

func TestLoadFromFileMissingFileIsNotAnError(t *testing.T) {
	z := boardpos.NewZobristTable(20)
	table := New(4)
	path := filepath.Join(t.TempDir(), "does-not-exist.gob")
	if err := table.LoadFromFile(path, z); err != nil {
		t.Fatalf("LoadFromFile on a missing file should return nil, got %v", err)
	}
	if table.Count() != 0 {
		t.Fatal("table should remain empty")
	}
}

func TestLoadFromFileCorruptFileIsDiscarded(t *testing.T) {
	z := boardpos.NewZobristTable(20)
	path := filepath.Join(t.TempDir(), "corrupt.gob")
	if err := os.WriteFile(path, []byte("not a gob file"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	table := New(4)
	if err := table.LoadFromFile(path, z); err != nil {
		t.Fatalf("LoadFromFile on a corrupt file should tolerate it, got %v", err)
	}
}
