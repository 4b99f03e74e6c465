package board

// IsFreezeDeadlock reports whether the box at p can never be pushed again:
// blocked along both the horizontal and vertical axis by some combination
// of walls and other boxes that are themselves frozen. allowOnGoal, when
// true, treats a frozen box that already sits on a goal as fine rather than
// a deadlock -- a box is only a problem once it is stuck somewhere it
// shouldn't be.
func (b *Board) IsFreezeDeadlock(p int, allowOnGoal bool) bool {
	frozen := b.isAxisFrozen(p, make(map[int]bool))
	if allowOnGoal && b.IsGoal(p) {
		return false
	}
	return frozen
}

func (b *Board) isAxisFrozen(p int, visited map[int]bool) bool {
	if visited[p] {
		// Already on the call stack: assume frozen for the purpose of
		// breaking mutual-support cycles between adjacent boxes.
		return true
	}
	visited[p] = true

	x, y := b.XY(p)
	leftBlocked := x == 0 || b.isSideBlocked(p-1, visited)
	rightBlocked := x == b.width-1 || b.isSideBlocked(p+1, visited)
	upBlocked := y == 0 || b.isSideBlocked(p-b.width, visited)
	downBlocked := y == b.height-1 || b.isSideBlocked(p+b.width, visited)

	horizontal := leftBlocked && rightBlocked
	vertical := upBlocked && downBlocked
	return horizontal && vertical
}

func (b *Board) isSideBlocked(q int, visited map[int]bool) bool {
	if b.IsWall(q) {
		return true
	}
	if b.IsBox(q) {
		return b.isAxisFrozen(q, visited)
	}
	return false
}
