// Package openqueue is the b-type solver's bucketed open list: one FIFO per
// heuristic bucket (count of boxes sitting on their correct goal), scanned
// high-to-low on dequeue so workers expand the most-promising positions
// first. Ties within a bucket are FIFO; this is an ordering hint, not a
// strict priority queue.
package openqueue

import (
	"sync"

	"github.com/hansschaa/JSoko-2.0/boardpos"
)

type fifo struct {
	mu    sync.Mutex
	items []boardpos.Node
}

func (f *fifo) push(n boardpos.Node) {
	f.mu.Lock()
	f.items = append(f.items, n)
	f.mu.Unlock()
}

func (f *fifo) pop() (boardpos.Node, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) == 0 {
		return nil, false
	}
	n := f.items[0]
	f.items = f.items[1:]
	return n, true
}

func (f *fifo) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// Queue holds one FIFO per bucket, bucket index 0..numBuckets-1.
type Queue struct {
	buckets []fifo
}

// New returns a queue with numBuckets buckets. numBuckets is clamped to at
// least 1 so a degenerate zero-box level never indexes out of range.
func New(numBuckets int) *Queue {
	if numBuckets < 1 {
		numBuckets = 1
	}
	return &Queue{buckets: make([]fifo, numBuckets)}
}

// NumBuckets returns the bucket count this queue was built with.
func (q *Queue) NumBuckets() int { return len(q.buckets) }

// Enqueue places n into the given bucket. bucket is clamped into
// [0, NumBuckets) rather than panicking on an out-of-range index -- see the
// clamp note on the heuristic's bucket-underflow open question.
func (q *Queue) Enqueue(bucket int, n boardpos.Node) {
	q.buckets[q.clamp(bucket)].push(n)
}

func (q *Queue) clamp(bucket int) int {
	if bucket < 0 {
		return 0
	}
	if bucket >= len(q.buckets) {
		return len(q.buckets) - 1
	}
	return bucket
}

// Dequeue scans buckets from the highest index down and pops the first
// non-empty one it finds. A false second return is the signal this worker
// saw every bucket empty at the moment of the scan.
func (q *Queue) Dequeue() (boardpos.Node, bool) {
	for i := len(q.buckets) - 1; i >= 0; i-- {
		if n, ok := q.buckets[i].pop(); ok {
			return n, true
		}
	}
	return nil, false
}

// Len sums the length of every bucket. Diagnostics only.
func (q *Queue) Len() int {
	total := 0
	for i := range q.buckets {
		total += q.buckets[i].len()
	}
	return total
}
