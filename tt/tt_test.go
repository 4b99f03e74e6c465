package tt

import (
	"sync"
	"testing"

	"github.com/hansschaa/JSoko-2.0/boardpos"
)

func TestPutIfAbsentFirstWins(t *testing.T) {
	z := boardpos.NewZobristTable(20)
	table := New(4)

	first := boardpos.NewRoot([]int{1, 2, 3}, false, z)
	existing, present := table.PutIfAbsent(first)
	if present || existing != nil {
		t.Fatal("first insert should report absent")
	}

	second := boardpos.NewRoot([]int{3, 2, 1}, true, z) // same boxes, opposite direction
	existing, present = table.PutIfAbsent(second)
	if !present {
		t.Fatal("inserting an equal-boxes node should report present")
	}
	if existing.IsBackward() != false {
		t.Fatal("PutIfAbsent should return the originally stored node, not the new one")
	}
}

func TestPutIfAbsentDistinctBoxSets(t *testing.T) {
	z := boardpos.NewZobristTable(20)
	table := New(4)

	a := boardpos.NewRoot([]int{1, 2}, false, z)
	b := boardpos.NewRoot([]int{3, 4}, false, z)
	if _, present := table.PutIfAbsent(a); present {
		t.Fatal("a should be absent on first insert")
	}
	if _, present := table.PutIfAbsent(b); present {
		t.Fatal("b has a distinct box set and should also be absent")
	}
	if table.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", table.Count())
	}
}

func TestPutIfAbsentConcurrentInsertsSameKeyOnlyOneWins(t *testing.T) {
	z := boardpos.NewZobristTable(20)
	table := New(8)

	const workers = 32
	var wg sync.WaitGroup
	wins := make([]bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n := boardpos.NewRoot([]int{5, 6, 7}, false, z)
			_, present := table.PutIfAbsent(n)
			wins[i] = !present
		}(i)
	}
	wg.Wait()

	winCount := 0
	for _, w := range wins {
		if w {
			winCount++
		}
	}
	if winCount != 1 {
		t.Fatalf("exactly one concurrent insert should win, got %d", winCount)
	}
	if table.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", table.Count())
	}
}
