package solver

import (
	"context"
	"runtime"
	"strconv"

	"github.com/hansschaa/JSoko-2.0/board"
)

const (
	mepProgressInterval = 512
	oomThresholdBytes   = 15 * 1024 * 1024
)

// mepNode is the moves-equals-pushes solver's own lightweight board-position
// node. Unlike the b-type solver's boardpos.Node, equality here includes
// player position and there is no shared transposition table: this solver
// dedups nothing, it simply explores push-space breadth-first via a plain
// FIFO, matching the ground-truth algorithm.
type mepNode struct {
	boxes            []int
	playerPosition   int
	pushedBoxPosition int
	pushDirection    board.Direction
	pushCount        int
	parent           *mepNode
}

const noBoxPushed = -1

// SolveMovesEqualsPushes runs a single-threaded BFS over push-space,
// assuming the puzzle's optimal solution has moves exactly equal to
// pushes. b must be positioned at the puzzle's starting configuration; it
// is restored to that configuration before this function returns,
// regardless of outcome.
func SolveMovesEqualsPushes(ctx context.Context, b *board.Board, progress func(string)) (*Solution, error) {
	startBoxes := b.BoxPositionsClone()
	startPlayer := b.PlayerPosition()
	restore := func() {
		b.SetBoxPositions(startBoxes)
		b.SetPlayerPosition(startPlayer)
	}
	defer restore()

	root := &mepNode{
		boxes:             startBoxes,
		playerPosition:    startPlayer,
		pushedBoxPosition: noBoxPushed,
		pushCount:         0,
	}

	queue := []*mepNode{root}
	expansions := 0

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		current := queue[0]
		queue = queue[1:]

		b.SetBoxPositions(current.boxes)
		b.SetPlayerPosition(current.playerPosition)

		for d := board.Up; d <= board.Left; d++ {
			offset := b.Offset(d)
			pushFrom := current.playerPosition + offset
			pushTo := pushFrom + offset
			if !b.IsBox(pushFrom) || !b.IsAccessibleBox(pushTo) {
				continue
			}

			b.PushBox(pushFrom, pushTo)
			b.SetPlayerPosition(pushFrom)

			child := &mepNode{
				boxes:             b.BoxPositionsClone(),
				playerPosition:    pushFrom,
				pushedBoxPosition: pushTo,
				pushDirection:     d,
				pushCount:         current.pushCount + 1,
				parent:            current,
			}

			if b.IsFreezeDeadlock(pushTo, true) {
				b.PushBoxUndo(pushTo, pushFrom)
				continue
			}

			if b.IsBoxOnGoal(pushTo) && b.EveryBoxOnGoal() {
				b.PushBoxUndo(pushTo, pushFrom)
				return finishMovesEqualsPushes(b, startBoxes, startPlayer, child)
			}

			b.PushBoxUndo(pushTo, pushFrom)
			queue = append(queue, child)
		}

		expansions++
		if expansions%mepProgressInterval == 0 {
			if progress != nil {
				progress("solved=false positions=" + strconv.Itoa(expansions) + " depth=" + strconv.Itoa(current.pushCount))
			}
			if freeMemoryBelowThreshold() {
				return nil, ErrOutOfMemory
			}
		}
	}

	return nil, ErrNoSolution
}

// finishMovesEqualsPushes walks the parent chain from the solution node back
// to the root, collecting the subsequence of pushes, then replays them
// against the restored starting board to build the LURD string.
func finishMovesEqualsPushes(b *board.Board, startBoxes []int, startPlayer int, solutionNode *mepNode) (*Solution, error) {
	var pushChain []*mepNode
	for n := solutionNode; n != nil; n = n.parent {
		if n.pushedBoxPosition != noBoxPushed {
			pushChain = append(pushChain, n)
		}
	}
	// Reverse into root-to-leaf order.
	for i, j := 0, len(pushChain)-1; i < j; i, j = i+1, j-1 {
		pushChain[i], pushChain[j] = pushChain[j], pushChain[i]
	}

	b.SetBoxPositions(startBoxes)
	b.SetPlayerPosition(startPlayer)

	h := &history{}
	for _, n := range pushChain {
		h.push(n.pushDirection)
		b.PushBox(n.playerPosition, n.pushedBoxPosition)
		b.SetPlayerPosition(n.playerPosition)
	}

	b.SetBoxPositions(startBoxes)
	b.SetPlayerPosition(startPlayer)
	return &Solution{Name: "moves-equals-pushes", LURD: h.lurd()}, nil
}

func freeMemoryBelowThreshold() bool {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	free := stats.Sys - stats.HeapInuse
	return free < oomThresholdBytes
}
