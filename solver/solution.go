package solver

import "github.com/hansschaa/JSoko-2.0/board"

// Solution is what a successful solve produces: the complete LURD string
// from the initial board to every box on its goal.
type Solution struct {
	Name string
	LURD string
}

// history accumulates push/walk events by direction and renders them to a
// LURD string, the Go analogue of JSoko's movesHistory sink.
type history struct {
	moves []byte
}

func (h *history) walk(d board.Direction) {
	h.moves = append(h.moves, lowerGlyph(d))
}

func (h *history) push(d board.Direction) {
	h.moves = append(h.moves, upperGlyph(d))
}

func (h *history) lurd() string {
	return string(h.moves)
}

func lowerGlyph(d board.Direction) byte {
	switch d {
	case board.Up:
		return 'u'
	case board.Right:
		return 'r'
	case board.Down:
		return 'd'
	case board.Left:
		return 'l'
	}
	return '?'
}

func upperGlyph(d board.Direction) byte {
	switch d {
	case board.Up:
		return 'U'
	case board.Right:
		return 'R'
	case board.Down:
		return 'D'
	case board.Left:
		return 'L'
	}
	return '?'
}
