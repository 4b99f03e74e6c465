package board

import "testing"

func TestBoxesOnCorrectGoalCountSingleAxis(t *testing.T) {
	// A single horizontal corridor with one box and one goal: the axis
	// bijection holds (1 box, 1 goal along the corridor), so the box counts
	// as correctly placed once it sits on the goal.
	b, err := Parse("######\n#@ .$#\n######\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.BoxesOnCorrectGoalCount() != 0 {
		t.Fatalf("box not on goal yet, want 0 correct, got %d", b.BoxesOnCorrectGoalCount())
	}
	goal := b.BoxAt(0) - 1 // the '.' cell, one step left of the box
	b.SetBoxPositions([]int{goal})
	if b.BoxesOnCorrectGoalCount() != 1 {
		t.Fatalf("box now on its only same-axis goal, want 1 correct, got %d", b.BoxesOnCorrectGoalCount())
	}
}

func TestLowerBoundPushesCountsMisplacedBoxes(t *testing.T) {
	b, err := Parse("#######\n#@ .$.#\n#######\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lb, deadlock := b.LowerBoundPushes()
	if deadlock {
		t.Fatal("two goals on the axis should not report deadlockAtStart")
	}
	if lb != 1 {
		t.Fatalf("LowerBoundPushes = %d, want 1", lb)
	}
}

func TestLowerBoundPushesDetectsAxisWithoutGoal(t *testing.T) {
	b, err := Parse("#####\n#@$ #\n#####\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, deadlock := b.LowerBoundPushes()
	if !deadlock {
		t.Fatal("a box whose corridor has no goal at all must report deadlockAtStart")
	}
}

func TestAxisCountsMatchesWalkAxis(t *testing.T) {
	// The box's corridor is walked in one direction only (RIGHT here, since
	// the cell above it is a wall), never backward: the goal to the box's
	// left must not be counted, only the one to its right.
	b, err := Parse("#######\n#@ .$.#\n#######\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	boxCount, goalCount := b.AxisCounts(b.BoxAt(0))
	if goalCount != 1 {
		t.Fatalf("AxisCounts goalCount = %d, want 1", goalCount)
	}
	if boxCount != 0 {
		t.Fatalf("AxisCounts boxCount = %d, want 0", boxCount)
	}
}
