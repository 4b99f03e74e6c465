package solver

import "testing"

func TestReconstructEmptyInput(t *testing.T) {
	if out := Reconstruct(""); out != "" {
		t.Fatalf("Reconstruct(\"\") = %q, want empty", out)
	}
	if out := Reconstruct("   "); out != "" {
		t.Fatalf("Reconstruct of whitespace-only input should be empty, got %q", out)
	}
}

func TestReconstructStripsInvalidCharacters(t *testing.T) {
	out := Reconstruct("xyz")
	if out != "" {
		t.Fatalf("a trace with no valid udlr/UDLR characters should reconstruct to empty, got %q", out)
	}
}

func TestReconstructSinglePushProducesBoxAndGoal(t *testing.T) {
	out := Reconstruct("R")
	if out == "" {
		t.Fatal("a single valid push should reconstruct something")
	}
	hasPlayer, hasBoxOrGoal := false, false
	for _, c := range out {
		switch c {
		case '@', '+':
			hasPlayer = true
		case '$', '*', '.':
			hasBoxOrGoal = true
		}
	}
	if !hasPlayer {
		t.Fatalf("reconstructed board should contain a player glyph: %q", out)
	}
	if !hasBoxOrGoal {
		t.Fatalf("reconstructed board should contain a box or goal glyph: %q", out)
	}
}

func TestReconstructChainedPushesAdvanceTheSameBox(t *testing.T) {
	out := Reconstruct("RR")
	if out == "" {
		t.Fatal("two chained pushes of the same box should reconstruct successfully")
	}
}

func TestReconstructRejectsPushBackOntoVisitedFloor(t *testing.T) {
	// "rL": walk right onto a fresh cell, then push left back onto the
	// starting cell, which was already settled as floor -- not a box, so
	// the push is invalid.
	out := Reconstruct("rL")
	if out != "" {
		t.Fatalf("pushing onto an already-visited floor cell should reconstruct to empty, got %q", out)
	}
}

func TestReconstructIgnoresSeparatorCharacters(t *testing.T) {
	a := Reconstruct("R")
	b := Reconstruct("R\n \t")
	if a != b {
		t.Fatalf("non-udlr characters should be stripped before replay: %q vs %q", a, b)
	}
}
