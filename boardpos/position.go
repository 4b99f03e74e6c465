package boardpos

import "sort"

// Node is the common shape shared by Position and DeltaPosition: the only
// things the transposition table and the bidirectional solver need to treat
// a board position generically.
type Node interface {
	BoxesClone() []int
	HashValue() uint32
	IsBackward() bool
	ParentNode() Node
}

// Position is a full, player-agnostic snapshot of box positions: the ordered
// sequence is the canonicalization that makes equality independent of player
// position. It is immutable after construction.
type Position struct {
	boxes    []int
	hash     uint32
	backward bool
	parent   Node
}

// NewRoot builds a full Position from a set of box positions, sorting and
// hashing them against z. Used for the forward and backward search roots.
func NewRoot(boxes []int, backward bool, z *Table) *Position {
	sorted := append([]int(nil), boxes...)
	sort.Ints(sorted)
	return &Position{
		boxes:    sorted,
		hash:     hashBoxes(sorted, z),
		backward: backward,
	}
}

func hashBoxes(boxes []int, z *Table) uint32 {
	var h uint32
	for _, p := range boxes {
		h ^= z.At(p)
	}
	return h
}

// BoxesClone returns a defensive copy of the sorted box positions.
func (p *Position) BoxesClone() []int {
	return append([]int(nil), p.boxes...)
}

func (p *Position) HashValue() uint32 { return p.hash }
func (p *Position) IsBackward() bool  { return p.backward }
func (p *Position) ParentNode() Node  { return p.parent }

// Equal reports whether two nodes hold the same sorted box set, independent
// of player position or search direction.
func Equal(a, b Node) bool {
	if a.HashValue() != b.HashValue() {
		return false
	}
	ab, bb := a.BoxesClone(), b.BoxesClone()
	if len(ab) != len(bb) {
		return false
	}
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}
