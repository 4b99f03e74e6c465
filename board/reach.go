package board

// UpdateReachable recomputes the set of cells reachable by the player via
// floor/goal cells not currently occupied by a box, from the player's
// current position. Any box move invalidates the cached result.
func (b *Board) UpdateReachable() {
	for i := range b.reach {
		b.reach[i] = false
	}
	if !b.InBounds(b.player) || b.IsWall(b.player) {
		b.reachValid = true
		return
	}
	queue := make([]int, 0, len(b.cells))
	queue = append(queue, b.player)
	b.reach[b.player] = true
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		x, y := b.XY(p)
		for d := Up; d <= Left; d++ {
			q := p + b.offsets[d]
			if !b.stepInBounds(x, y, d) {
				continue
			}
			if b.reach[q] || b.IsWall(q) || b.box[q] {
				continue
			}
			b.reach[q] = true
			queue = append(queue, q)
		}
	}
	b.reachValid = true
}

// stepInBounds guards against wrap-around: moving Left from column 0 (or
// Right from the last column) would otherwise land on the next/previous row.
func (b *Board) stepInBounds(x, y int, d Direction) bool {
	switch d {
	case Up:
		return y > 0
	case Down:
		return y < b.height-1
	case Left:
		return x > 0
	case Right:
		return x < b.width-1
	}
	return false
}

// IsReachable reports whether p is reachable by the player, recomputing the
// flood-fill first if a box has moved since the last update.
func (b *Board) IsReachable(p int) bool {
	if !b.reachValid {
		b.UpdateReachable()
	}
	return b.InBounds(p) && b.reach[p]
}

// neighbors4 returns the positions adjacent to p that stay in bounds,
// skipping wrap-around edges.
func (b *Board) neighbors4(p int) []int {
	x, y := b.XY(p)
	out := make([]int, 0, 4)
	for d := Up; d <= Left; d++ {
		if !b.stepInBounds(x, y, d) {
			continue
		}
		out = append(out, p+b.offsets[d])
	}
	return out
}

// IsCorral reports whether pushing a box to newBoxPosition created a corral:
// a region enclosed from the player but still reachable to boxes. The
// b-type solver treats any corral as a deadlock. UpdateReachable must be
// called (with the player installed at the pushing cell) before this check.
func (b *Board) IsCorral(newBoxPosition int) bool {
	for _, n := range b.neighbors4(newBoxPosition) {
		if b.IsAccessibleBox(n) && !b.IsReachable(n) {
			return true
		}
	}
	return false
}
