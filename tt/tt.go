// Package tt is the b-type solver's transposition table: a concurrent
// dedup map from board position to the first-stored instance, shared by the
// forward and backward searches so that a collision across directions is the
// meeting-in-the-middle signal.
package tt

import (
	"sync"

	"github.com/hansschaa/JSoko-2.0/boardpos"
)

// Table is a sharded, stripe-locked map keyed by Zobrist hash. Each stripe
// holds a bucket of hash-colliding entries resolved by full box-set equality.
// First-wins PutIfAbsent semantics rather than a depth/age replacement
// policy: once a position is stored it never moves.
type Table struct {
	stripes   []stripe
	stripeMask uint32
}

type stripe struct {
	mu      sync.Mutex
	buckets map[uint32][]boardpos.Node
}

// New returns a table with stripeCount stripes, rounded up to a power of
// two and capped at 64 the way tt.go caps its stripe count.
func New(stripeCount int) *Table {
	if stripeCount <= 0 {
		stripeCount = 16
	}
	if stripeCount > 64 {
		stripeCount = 64
	}
	n := 1
	for n < stripeCount {
		n *= 2
	}
	stripes := make([]stripe, n)
	for i := range stripes {
		stripes[i].buckets = make(map[uint32][]boardpos.Node)
	}
	return &Table{stripes: stripes, stripeMask: uint32(n - 1)}
}

func (t *Table) stripeFor(hash uint32) *stripe {
	return &t.stripes[hash&t.stripeMask]
}

// PutIfAbsent atomically inserts n if no equal-boxes key is already present
// and returns (nil, false). Otherwise it returns the already-stored node
// (which may carry the opposite Backward flag -- the meet condition the
// b-type solver watches for) and true.
func (t *Table) PutIfAbsent(n boardpos.Node) (boardpos.Node, bool) {
	s := t.stripeFor(n.HashValue())
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.buckets[n.HashValue()]
	for _, existing := range bucket {
		if boardpos.Equal(existing, n) {
			return existing, true
		}
	}
	s.buckets[n.HashValue()] = append(bucket, n)
	return nil, false
}

// Count returns the number of stored entries. Used for diagnostics only.
func (t *Table) Count() int {
	count := 0
	for i := range t.stripes {
		t.stripes[i].mu.Lock()
		for _, bucket := range t.stripes[i].buckets {
			count += len(bucket)
		}
		t.stripes[i].mu.Unlock()
	}
	return count
}
