package boardpos

import "sort"

// DeltaPosition is the memory-economical successor representation: rather
// than cloning the full box array on every push, it stores only the one box
// that moved plus a pointer back to the position it was generated from.
// Reifying the full box set walks the parent chain back to the nearest full
// Position and replays each delta's old->new substitution in root-to-leaf
// order, then resorts.
type DeltaPosition struct {
	oldBox, newBox int
	hash           uint32
	backward       bool
	parent         Node
}

// NewDelta builds a successor of parent by moving the box at oldBox to
// newBox. The hash is updated incrementally: XOR out the old cell, XOR in
// the new one.
func NewDelta(parent Node, oldBox, newBox int, backward bool, z *Table) *DeltaPosition {
	return &DeltaPosition{
		oldBox:   oldBox,
		newBox:   newBox,
		hash:     parent.HashValue() ^ z.At(oldBox) ^ z.At(newBox),
		backward: backward,
		parent:   parent,
	}
}

func (d *DeltaPosition) HashValue() uint32 { return d.hash }
func (d *DeltaPosition) IsBackward() bool  { return d.backward }
func (d *DeltaPosition) ParentNode() Node  { return d.parent }

type substitution struct{ old, new int }

// BoxesClone reifies the full, sorted box array by walking up the parent
// chain to the nearest full Position, then replaying every delta substitution
// it passed through in root-to-leaf order.
func (d *DeltaPosition) BoxesClone() []int {
	var subs []substitution
	var cur Node = d
	for {
		delta, ok := cur.(*DeltaPosition)
		if !ok {
			break
		}
		subs = append(subs, substitution{delta.oldBox, delta.newBox})
		cur = delta.parent
	}
	root := cur.(*Position)
	boxes := root.BoxesClone()
	for i := len(subs) - 1; i >= 0; i-- {
		sub := subs[i]
		for j, p := range boxes {
			if p == sub.old {
				boxes[j] = sub.new
				break
			}
		}
	}
	sort.Ints(boxes)
	return boxes
}
