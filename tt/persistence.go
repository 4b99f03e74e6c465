package tt

import "github.com/hansschaa/JSoko-2.0/boardpos"

// Entry is the gob-serializable form of a stored node: its fully reified box
// set and search direction. Snapshotting necessarily flattens the parent
// chain, so a reloaded table is only useful for warm-starting dedup on a
// fresh search, never for replaying an old solution path.
type Entry struct {
	Boxes    []int
	Backward bool
}

// SnapshotEntries dumps every stored node, reified, for gob persistence.
func (t *Table) SnapshotEntries() []Entry {
	var entries []Entry
	for i := range t.stripes {
		t.stripes[i].mu.Lock()
		for _, bucket := range t.stripes[i].buckets {
			for _, n := range bucket {
				entries = append(entries, Entry{Boxes: n.BoxesClone(), Backward: n.IsBackward()})
			}
		}
		t.stripes[i].mu.Unlock()
	}
	return entries
}

// LoadEntries re-populates the table from a prior snapshot as root positions.
// Existing entries are kept; duplicates are silently dropped by PutIfAbsent.
func (t *Table) LoadEntries(entries []Entry, z *boardpos.Table) {
	for _, e := range entries {
		t.PutIfAbsent(boardpos.NewRoot(e.Boxes, e.Backward, z))
	}
}
