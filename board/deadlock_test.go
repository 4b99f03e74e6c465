package board

import "testing"

func TestIsFreezeDeadlockAllSidesWalled(t *testing.T) {
	b := New(3, 3)
	for p := 0; p < b.Size(); p++ {
		b.SetCell(p, Wall)
	}
	center := b.XYToPos(1, 1)
	b.SetCell(center, Floor)
	b.AddBox(center)

	if !b.IsFreezeDeadlock(center, false) {
		t.Fatal("a box walled in on all four sides must be a freeze deadlock")
	}
}

func TestIsFreezeDeadlockOpenFloorIsNotFrozen(t *testing.T) {
	b := New(5, 5)
	for p := 0; p < b.Size(); p++ {
		b.SetCell(p, Floor)
	}
	center := b.XYToPos(2, 2)
	b.AddBox(center)

	if b.IsFreezeDeadlock(center, false) {
		t.Fatal("a box with open floor on every side must not be frozen")
	}
}

func TestIsFreezeDeadlockAllowOnGoalSuppressesResult(t *testing.T) {
	b := New(3, 3)
	for p := 0; p < b.Size(); p++ {
		b.SetCell(p, Wall)
	}
	center := b.XYToPos(1, 1)
	b.SetCell(center, Goal)
	b.AddBox(center)

	if !b.IsFreezeDeadlock(center, false) {
		t.Fatal("without allowOnGoal, a frozen box on a goal is still reported frozen")
	}
	if b.IsFreezeDeadlock(center, true) {
		t.Fatal("with allowOnGoal, a frozen box already on its goal is not a deadlock")
	}
}

func TestIsFreezeDeadlockMutualSupportCycleTerminates(t *testing.T) {
	// Two boxes side by side, each blocked vertically by walls and
	// horizontally only by each other and an outer wall: neither box can
	// resolve the other's frozen status without the cycle guard.
	b := New(4, 3)
	for p := 0; p < b.Size(); p++ {
		b.SetCell(p, Wall)
	}
	left := b.XYToPos(1, 1)
	right := b.XYToPos(2, 1)
	b.SetCell(left, Floor)
	b.SetCell(right, Floor)
	b.AddBox(left)
	b.AddBox(right)

	if !b.IsFreezeDeadlock(left, false) {
		t.Fatal("box mutually walled in with its neighbor should be frozen")
	}
}
