// Package board implements the Sokoban grid the solvers operate on: walls,
// goals, boxes, the player, push/undo, reachability flood-fill, and the
// freeze/corral deadlock checks the §4.1 board-service contract requires.
package board

import (
	"fmt"
	"sort"
)

// Direction is one of the four cardinal directions, with a fixed offset
// table computed once per board width.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Cell is the static terrain of a board square.
type Cell int

const (
	Wall Cell = iota
	Floor
	Goal
)

// Board is a mutable row-major grid. Position p is y*width+x.
type Board struct {
	width, height int
	cells         []Cell
	box           []bool
	boxPos        []int // box positions by box number, identity order preserved
	player        int

	reach      []bool
	reachValid bool

	offsets [4]int
}

// New returns an empty (all-wall) board of the given dimensions.
func New(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		box:    make([]bool, width*height),
		reach:  make([]bool, width*height),
	}
	b.offsets = [4]int{-width, 1, width, -1}
	return b
}

// Width and Height report the grid dimensions.
func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Size returns the total cell count, the natural bound for Zobrist table
// sizing.
func (b *Board) Size() int { return b.width * b.height }

// Offset returns the fixed index delta for direction d.
func (b *Board) Offset(d Direction) int { return b.offsets[d] }

// XY decomposes a position into column/row, mostly for rendering and tests.
func (b *Board) XY(p int) (x, y int) { return p % b.width, p / b.width }

// XYToPos is the inverse of XY.
func (b *Board) XYToPos(x, y int) int { return y*b.width + x }

// InBounds reports whether p is a valid in-grid index.
func (b *Board) InBounds(p int) bool { return p >= 0 && p < len(b.cells) }

func (b *Board) SetCell(p int, c Cell) { b.cells[p] = c }
func (b *Board) CellAt(p int) Cell     { return b.cells[p] }

func (b *Board) IsWall(p int) bool { return !b.InBounds(p) || b.cells[p] == Wall }
func (b *Board) IsGoal(p int) bool { return b.InBounds(p) && b.cells[p] == Goal }
func (b *Board) IsBox(p int) bool  { return b.InBounds(p) && b.box[p] }

// IsBoxOnGoal reports whether p holds a box sitting on a goal cell.
func (b *Board) IsBoxOnGoal(p int) bool { return b.IsBox(p) && b.IsGoal(p) }

// IsAccessibleBox reports whether a box could be pushed into p: in bounds,
// not a wall, and not already occupied by another box.
func (b *Board) IsAccessibleBox(p int) bool {
	return b.InBounds(p) && b.cells[p] != Wall && !b.box[p]
}

// PlayerPosition returns the player's current cell.
func (b *Board) PlayerPosition() int { return b.player }

// SetPlayerPosition moves the player without touching any box.
func (b *Board) SetPlayerPosition(p int) {
	b.player = p
	b.reachValid = false
}

// NumBoxes returns the number of tracked boxes.
func (b *Board) NumBoxes() int { return len(b.boxPos) }

// BoxAt returns the position of box number i.
func (b *Board) BoxAt(i int) int { return b.boxPos[i] }

// BoxPositionsClone returns a sorted snapshot of every box position.
func (b *Board) BoxPositionsClone() []int {
	out := append([]int(nil), b.boxPos...)
	sort.Ints(out)
	return out
}

// RemoveAllBoxes clears every box from the board.
func (b *Board) RemoveAllBoxes() {
	for _, p := range b.boxPos {
		b.box[p] = false
	}
	b.boxPos = b.boxPos[:0]
	b.reachValid = false
}

// RemoveBox removes whichever box currently sits at p, if any.
func (b *Board) RemoveBox(p int) {
	for i, q := range b.boxPos {
		if q == p {
			b.box[p] = false
			b.boxPos = append(b.boxPos[:i], b.boxPos[i+1:]...)
			b.reachValid = false
			return
		}
	}
}

// AddBox appends a new box at p, assigning it the next box number.
func (b *Board) AddBox(p int) {
	b.box[p] = true
	b.boxPos = append(b.boxPos, p)
	b.reachValid = false
}

// SetBoxWithNo moves box number i to p directly, without going through
// PushBox/PushBoxUndo pairing. Used to restore a board to a snapshot.
func (b *Board) SetBoxWithNo(i int, p int) {
	old := b.boxPos[i]
	b.box[old] = false
	b.boxPos[i] = p
	b.box[p] = true
	b.reachValid = false
}

// SetBoxPositions replaces every box wholesale, preserving index order.
func (b *Board) SetBoxPositions(positions []int) {
	b.RemoveAllBoxes()
	for _, p := range positions {
		b.AddBox(p)
	}
}

// PushBox moves the box at from to to. The caller is responsible for also
// moving the player, and for calling PushBoxUndo to restore state exactly.
func (b *Board) PushBox(from, to int) {
	b.box[from] = false
	b.box[to] = true
	for i, p := range b.boxPos {
		if p == from {
			b.boxPos[i] = to
			break
		}
	}
	b.reachValid = false
}

// PushBoxUndo is the exact inverse of PushBox(from=to-side, to=from-side):
// call it with the same (to, from) pair PushBox was called with.
func (b *Board) PushBoxUndo(to, from int) {
	b.box[to] = false
	b.box[from] = true
	for i, p := range b.boxPos {
		if p == to {
			b.boxPos[i] = from
			break
		}
	}
	b.reachValid = false
}

// Clone deep-copies the board, for each b-type worker to own its own copy.
func (b *Board) Clone() *Board {
	clone := &Board{
		width:   b.width,
		height:  b.height,
		cells:   append([]Cell(nil), b.cells...),
		box:     append([]bool(nil), b.box...),
		boxPos:  append([]int(nil), b.boxPos...),
		player:  b.player,
		reach:   make([]bool, len(b.reach)),
		offsets: b.offsets,
	}
	return clone
}

// Mirror builds the backward-search board for the b-type solver: goals
// become boxes at goal cells, and boxes become goals at box cells, wall
// layout unchanged. Player position is left at the forward board's player
// cell; the backward search never relies on it being meaningful.
func (b *Board) Mirror() *Board {
	mirror := New(b.width, b.height)
	for p, c := range b.cells {
		if c == Wall {
			mirror.cells[p] = Wall
			continue
		}
		if b.box[p] {
			mirror.cells[p] = Goal
		} else {
			mirror.cells[p] = Floor
		}
	}
	for p, c := range b.cells {
		if c == Goal {
			mirror.AddBox(p)
		}
	}
	mirror.player = b.player
	return mirror
}

func (b *Board) String() string {
	return fmt.Sprintf("Board(%dx%d, boxes=%d)", b.width, b.height, len(b.boxPos))
}
