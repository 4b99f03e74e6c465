// Package levelcheck validates the b-type solver's axis-bijection
// precondition once per search launch, before any worker is spawned.
package levelcheck

import (
	"errors"
	"fmt"

	. "github.com/gitrdm/gokanlogic/pkg/minikanren"

	"github.com/hansschaa/JSoko-2.0/board"
)

// ErrAxisMismatch is returned when some box's free-movement corridor holds a
// different number of boxes than goals, meaning no axis-preserving push
// sequence can ever place every box correctly.
var ErrAxisMismatch = errors.New("levelcheck: axis box/goal count mismatch")

// ValidateBType checks every box's corridor against the axis-bijection
// precondition the b-type solver assumes. Each corridor check is expressed
// as a small relational goal rather than a bare integer comparison, so a
// future richer precondition (e.g. per-axis goal assignment feasibility)
// can be folded into the same Conj without changing this function's shape.
func ValidateBType(b *board.Board) error {
	for i := 0; i < b.NumBoxes(); i++ {
		p := b.BoxAt(i)
		boxCount, goalCount := b.AxisCounts(p)

		boxes := Fresh("boxes")
		goals := Fresh("goals")
		goal := Conj(
			Eq(boxes, A(boxCount)),
			Eq(goals, A(goalCount)),
			Eq(boxes, goals),
		)
		if len(Solutions(goal, boxes)) == 0 {
			return fmt.Errorf("%w: corridor through position %d has %d boxes, %d goals", ErrAxisMismatch, p, boxCount, goalCount)
		}
	}
	return nil
}
