package tt

import (
	"testing"

	"github.com/hansschaa/JSoko-2.0/boardpos"
)

func TestSnapshotAndLoadEntriesRoundTrip(t *testing.T) {
	z := boardpos.NewZobristTable(20)
	table := New(4)
	table.PutIfAbsent(boardpos.NewRoot([]int{1, 2, 3}, false, z))
	table.PutIfAbsent(boardpos.NewRoot([]int{4, 5, 6}, true, z))

	entries := table.SnapshotEntries()
	if len(entries) != 2 {
		t.Fatalf("SnapshotEntries returned %d entries, want 2", len(entries))
	}

	reloaded := New(4)
	reloaded.LoadEntries(entries, z)
	if reloaded.Count() != 2 {
		t.Fatalf("reloaded Count() = %d, want 2", reloaded.Count())
	}

	if _, present := reloaded.PutIfAbsent(boardpos.NewRoot([]int{1, 2, 3}, false, z)); !present {
		t.Fatal("reloaded table should already contain the first snapshot entry")
	}
}

func TestLoadEntriesDropsDuplicatesAgainstExisting(t *testing.T) {
	z := boardpos.NewZobristTable(20)
	table := New(4)
	table.PutIfAbsent(boardpos.NewRoot([]int{1, 2, 3}, false, z))

	table.LoadEntries([]Entry{{Boxes: []int{1, 2, 3}, Backward: false}}, z)
	if table.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (duplicate should be dropped)", table.Count())
	}
}
