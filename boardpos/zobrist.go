// Package boardpos holds the immutable, hashable box-position snapshots that
// the b-type bidirectional solver uses for deduplication and meet detection.
package boardpos

import "sync"

// Table is a fixed Zobrist table: one 32-bit value per cell, deterministic
// across runs so that hash-derived search behavior is reproducible in tests.
type Table struct {
	cells []uint32
}

// At returns the Zobrist constant for cell p.
func (t *Table) At(p int) uint32 {
	return t.cells[p]
}

type tableStore struct {
	mu     sync.Mutex
	tables map[int]*Table
}

var zobristTables = &tableStore{tables: make(map[int]*Table)}

// NewZobristTable returns the memoized table sized for a board of
// maxBoardSize cells, generating it on first use with the fixed seed 42.
// Because the same seeded generator is replayed from the start every time,
// a table for a smaller board is always a prefix of one for a larger board.
func NewZobristTable(maxBoardSize int) *Table {
	if maxBoardSize < 1 {
		maxBoardSize = 1
	}
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[maxBoardSize]; ok {
		return table
	}
	rng := splitmix64{state: 42}
	cells := make([]uint32, maxBoardSize)
	for i := range cells {
		cells[i] = uint32(rng.next())
	}
	table := &Table{cells: cells}
	zobristTables.tables[maxBoardSize] = table
	return table
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
