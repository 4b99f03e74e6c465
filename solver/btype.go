package solver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hansschaa/JSoko-2.0/board"
	"github.com/hansschaa/JSoko-2.0/boardpos"
	"github.com/hansschaa/JSoko-2.0/openqueue"
	"github.com/hansschaa/JSoko-2.0/tt"
)

// BTypeOptions tunes the bidirectional solver. A zero-valued BTypeOptions
// is replaced by sensible defaults.
type BTypeOptions struct {
	WorkerCount      int           // 0 = GOMAXPROCS
	QuiesceSleep     time.Duration // 0 = 20ms, the JSoko recheck interval
	OOMCheckInterval int           // 0 = 65536 insertions
	Progress         func(string)
}

func (o BTypeOptions) withDefaults() BTypeOptions {
	if o.WorkerCount <= 0 {
		o.WorkerCount = runtime.GOMAXPROCS(0)
	}
	if o.QuiesceSleep <= 0 {
		o.QuiesceSleep = 20 * time.Millisecond
	}
	if o.OOMCheckInterval <= 0 {
		o.OOMCheckInterval = 65536
	}
	return o
}

// meetResult records one candidate meeting point: the forward-side and
// backward-side nodes whose box sets coincided, and the assembled path
// length so concurrent meets can be compared under a single lock.
type meetResult struct {
	forward  boardpos.Node
	backward boardpos.Node
	length   int
}

// SolveBType runs the parallel bidirectional search for a b-type (zero-space
// spanning-tree) puzzle. b must be positioned at the starting configuration;
// it is restored before this function returns, regardless of outcome.
func SolveBType(ctx context.Context, b *board.Board, opts BTypeOptions) (*Solution, error) {
	opts = opts.withDefaults()

	startBoxes := b.BoxPositionsClone()
	startPlayer := b.PlayerPosition()
	defer func() {
		b.SetBoxPositions(startBoxes)
		b.SetPlayerPosition(startPlayer)
	}()

	lowerBound, deadlock := b.LowerBoundPushes()
	if deadlock {
		return nil, ErrDeadlockAtStart
	}
	if lowerBound == 0 {
		return &Solution{Name: "b-type", LURD: ""}, nil
	}

	z := boardpos.NewZobristTable(b.Size())
	table := tt.New(32)

	buckets := b.NumBoxes()
	if buckets < 1 {
		buckets = 1
	}
	fwdQueue := openqueue.New(buckets)
	bwdQueue := openqueue.New(buckets)

	fwdRoot := boardpos.NewRoot(b.BoxPositionsClone(), false, z)
	table.PutIfAbsent(fwdRoot)
	fwdQueue.Enqueue(b.BoxesOnCorrectGoalCount()-1, fwdRoot)

	mirror := b.Mirror()
	bwdRoot := boardpos.NewRoot(mirror.BoxPositionsClone(), true, z)
	table.PutIfAbsent(bwdRoot)
	bwdQueue.Enqueue(mirror.BoxesOnCorrectGoalCount()-1, bwdRoot)

	forwardWorkers := opts.WorkerCount / 2
	backwardWorkers := opts.WorkerCount / 2
	if forwardWorkers < 1 {
		forwardWorkers = 1
	}
	if backwardWorkers < 1 {
		backwardWorkers = 1
	}
	total := int32(forwardWorkers + backwardWorkers)

	var running atomic.Bool
	running.Store(true)
	var emptyCount atomic.Int32
	var progressCounter atomic.Int64
	var solutionMu sync.Mutex
	var best *meetResult
	var oomHit atomic.Bool
	var workerErr error
	var workerErrOnce sync.Once

	var wg sync.WaitGroup
	spawn := func(backward bool, myBoard *board.Board, queue *openqueue.Queue) {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				running.Store(false)
				workerErrOnce.Do(func() { workerErr = fmt.Errorf("solver: b-type worker panic: %v", r) })
			}
		}()
		runBTypeWorker(ctx, btypeWorkerConfig{
			backward:         backward,
			board:            myBoard,
			queue:            queue,
			table:            table,
			z:                z,
			running:          &running,
			emptyCount:       &emptyCount,
			totalWorkers:     total,
			quiesceSleep:     opts.QuiesceSleep,
			oomCheckInterval: opts.OOMCheckInterval,
			progressCounter:  &progressCounter,
			progress:         opts.Progress,
			solutionMu:       &solutionMu,
			best:             &best,
			oomHit:           &oomHit,
		})
	}

	for i := 0; i < forwardWorkers; i++ {
		wg.Add(1)
		go spawn(false, b.Clone(), fwdQueue)
	}
	for i := 0; i < backwardWorkers; i++ {
		wg.Add(1)
		go spawn(true, mirror.Clone(), bwdQueue)
	}

	wg.Wait()

	if workerErr != nil {
		return nil, workerErr
	}
	if oomHit.Load() {
		return nil, ErrOutOfMemory
	}
	if ctx.Err() != nil {
		return nil, ErrCancelled
	}
	if best == nil {
		return nil, ErrNoSolution
	}

	path := assembleMeetPath(best.forward, best.backward)
	return &Solution{Name: "b-type", LURD: assembleBTypeLURD(b, path)}, nil
}

type btypeWorkerConfig struct {
	backward         bool
	board            *board.Board
	queue            *openqueue.Queue
	table            *tt.Table
	z                *boardpos.Table
	running          *atomic.Bool
	emptyCount       *atomic.Int32
	totalWorkers     int32
	quiesceSleep     time.Duration
	oomCheckInterval int
	progressCounter  *atomic.Int64
	progress         func(string)
	solutionMu       *sync.Mutex
	best             **meetResult
	oomHit           *atomic.Bool
}

func runBTypeWorker(ctx context.Context, cfg btypeWorkerConfig) {
	b := cfg.board
	for {
		select {
		case <-ctx.Done():
			cfg.running.Store(false)
			return
		default:
		}
		if !cfg.running.Load() {
			return
		}

		node, ok := cfg.queue.Dequeue()
		if !ok {
			if quiesce(ctx, cfg.emptyCount, cfg.totalWorkers, cfg.running, cfg.quiesceSleep) {
				return
			}
			continue
		}

		b.SetBoxPositions(node.BoxesClone())

		numBoxes := b.NumBoxes()
		for i := 0; i < numBoxes && cfg.running.Load(); i++ {
			boxPos := b.BoxAt(i)
			for d := board.Up; d <= board.Left; d++ {
				offset := b.Offset(d)
				pOne := boxPos + offset
				pTwo := pOne + offset
				if !b.IsAccessibleBox(pOne) || !b.IsAccessibleBox(pTwo) {
					continue
				}

				b.PushBox(boxPos, pTwo)
				b.SetPlayerPosition(pOne)

				if b.IsCorral(pTwo) {
					b.PushBoxUndo(pTwo, boxPos)
					continue
				}

				child := boardpos.NewDelta(node, boxPos, pTwo, cfg.backward, cfg.z)

				count := cfg.progressCounter.Add(1)
				if int(count)%cfg.oomCheckInterval == 0 {
					if cfg.progress != nil {
						cfg.progress("solved=false positions=" + strconv.Itoa(int(count)))
					}
					if freeMemoryBelowThreshold() {
						cfg.oomHit.Store(true)
						cfg.running.Store(false)
						b.PushBoxUndo(pTwo, boxPos)
						return
					}
				}

				existing, had := cfg.table.PutIfAbsent(child)
				if !had {
					cfg.queue.Enqueue(b.BoxesOnCorrectGoalCount()-1, child)
				} else if existing.IsBackward() != cfg.backward {
					recordMeet(cfg.solutionMu, cfg.best, child, existing, cfg.backward)
					cfg.running.Store(false)
					b.PushBoxUndo(pTwo, boxPos)
					return
				}

				b.PushBoxUndo(pTwo, boxPos)
			}
		}
	}
}

func quiesce(ctx context.Context, emptyCount *atomic.Int32, total int32, running *atomic.Bool, sleep time.Duration) bool {
	n := emptyCount.Add(1)
	if n >= total {
		running.Store(false)
		return true
	}
	select {
	case <-ctx.Done():
		running.Store(false)
		return true
	case <-time.After(sleep):
	}
	if emptyCount.Load() >= total {
		running.Store(false)
		return true
	}
	emptyCount.Add(-1)
	return false
}

func recordMeet(mu *sync.Mutex, best **meetResult, child, existing boardpos.Node, childIsBackward bool) {
	var fwd, bwd boardpos.Node
	if childIsBackward {
		fwd, bwd = existing, child
	} else {
		fwd, bwd = child, existing
	}
	length := pathLength(fwd, bwd)

	mu.Lock()
	defer mu.Unlock()
	if *best == nil || length < (*best).length {
		*best = &meetResult{forward: fwd, backward: bwd, length: length}
	}
}

func pathLength(fwd, bwd boardpos.Node) int {
	n := 0
	for cur := fwd; cur != nil; cur = cur.ParentNode() {
		n++
	}
	for cur := bwd.ParentNode(); cur != nil; cur = cur.ParentNode() {
		n++
	}
	return n
}

// assembleMeetPath walks both sides of a meet into one ordered chain of
// box-configurations: forward root .. fwd, then bwd.parent .. backward root.
func assembleMeetPath(fwd, bwd boardpos.Node) []boardpos.Node {
	var fwdChain []boardpos.Node
	for cur := fwd; cur != nil; cur = cur.ParentNode() {
		fwdChain = append(fwdChain, cur)
	}
	for i, j := 0, len(fwdChain)-1; i < j; i, j = i+1, j-1 {
		fwdChain[i], fwdChain[j] = fwdChain[j], fwdChain[i]
	}

	path := fwdChain
	for cur := bwd.ParentNode(); cur != nil; cur = cur.ParentNode() {
		path = append(path, cur)
	}
	return path
}

func assembleBTypeLURD(b *board.Board, path []boardpos.Node) string {
	h := &history{}
	for i := 1; i < len(path); i++ {
		oldPos, newPos, ok := diffBoxes(path[i-1].BoxesClone(), path[i].BoxesClone())
		if !ok {
			continue
		}
		delta := newPos - oldPos
		for d := board.Up; d <= board.Left; d++ {
			if 2*b.Offset(d) == delta {
				h.push(d)
				h.push(d)
				break
			}
		}
	}
	return h.lurd()
}

// diffBoxes finds the single box position present in prev but not next
// (oldPos) and the single position present in next but not prev (newPos).
func diffBoxes(prev, next []int) (oldPos, newPos int, ok bool) {
	counts := make(map[int]int, len(prev))
	for _, p := range prev {
		counts[p]++
	}
	for _, p := range next {
		counts[p]--
	}
	oldPos, newPos = -1, -1
	for p, c := range counts {
		if c > 0 {
			oldPos = p
		} else if c < 0 {
			newPos = p
		}
	}
	return oldPos, newPos, oldPos != -1 && newPos != -1
}
