package board

import "testing"

func TestUpdateReachableStopsAtWallsAndBoxes(t *testing.T) {
	b, err := Parse("#####\n#@ $#\n# # #\n#   #\n#####\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b.UpdateReachable()

	x, y := 1, 1 // player cell
	if !b.IsReachable(b.XYToPos(x, y)) {
		t.Fatal("player's own cell must be reachable")
	}
	if !b.IsReachable(b.XYToPos(1, 3)) {
		t.Fatal("cell reachable via the long way around should be reachable")
	}
	boxPos := b.XYToPos(3, 1)
	if b.IsReachable(boxPos) {
		t.Fatal("a cell occupied by a box must not be reachable")
	}
}

func TestIsCorralDetectsSealedPocket(t *testing.T) {
	b, err := Parse("#######\n#@$  $#\n#######\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	from := b.BoxAt(0)
	to := from + b.Offset(Right)
	b.PushBox(from, to)
	b.SetPlayerPosition(from)

	if !b.IsCorral(to) {
		t.Fatal("pushing the box into the corridor should seal the far floor cell into a corral")
	}
}

func TestIsCorralFalseInOpenRoom(t *testing.T) {
	b, err := Parse("#######\n#@$   #\n#     #\n#######\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	from := b.BoxAt(0)
	to := from + b.Offset(Right)
	b.PushBox(from, to)
	b.SetPlayerPosition(from)

	if b.IsCorral(to) {
		t.Fatal("pushing into an open room should not create a corral")
	}
}
