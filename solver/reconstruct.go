package solver

import (
	"regexp"
	"strings"
)

const (
	rcBox          = '$'
	rcBoxOnGoal    = '*'
	rcPlayer       = '@'
	rcPlayerOnGoal = '+'
	rcGoal         = '.'
	rcUnreached    = '-'
	rcFloor        = ' '
	rcWall         = '#'
)

var lurdSanitize = regexp.MustCompile(`[^udlrUDLR]`)

type coord struct{ x, y int }

// Reconstruct replays a LURD solution trace on an unbounded implicit grid
// and synthesizes a complete puzzle (walls, boxes, goals, player) from
// nothing but the trace, per §4.7. It returns "" on any of the three
// invalid conditions rather than an error, matching the original
// converter's contract exactly (callers that need an error can check for
// an empty result).
func Reconstruct(lurd string) string {
	if strings.TrimSpace(lurd) == "" {
		return ""
	}
	clean := lurdSanitize.ReplaceAllString(lurd, "")
	if clean == "" {
		return ""
	}

	width, height, playerStart := reconstructBounds(clean)
	grid := make([][]byte, width)
	for x := range grid {
		grid[x] = make([]byte, height)
		for y := range grid[x] {
			grid[x][y] = rcUnreached
		}
	}
	isInitialBox := make([][]bool, width)
	for x := range isInitialBox {
		isInitialBox[x] = make([]bool, height)
	}

	player := playerStart
	grid[player.x][player.y] = rcFloor

	for i := 0; i < len(clean); i++ {
		move := clean[i]
		player = afterMove(player, move)
		if !inGrid(player, width, height) {
			return ""
		}

		isPush := move >= 'A' && move <= 'Z'
		if isPush && grid[player.x][player.y] != rcBox {
			if grid[player.x][player.y] != rcUnreached {
				return ""
			}
			grid[player.x][player.y] = rcBox
			isInitialBox[player.x][player.y] = true
		}

		if grid[player.x][player.y] == rcBox {
			if !isPush {
				return ""
			}
			target := afterMove(player, move)
			if !inGrid(target, width, height) {
				return ""
			}
			if grid[target.x][target.y] == rcBox {
				return ""
			}
			grid[target.x][target.y] = rcBox
		}

		grid[player.x][player.y] = rcFloor
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			current := grid[x][y]
			if current == rcFloor || current == rcBox {
				setWallsAroundUnreached(grid, x, y)
				if current == rcBox {
					grid[x][y] = rcGoal
				}
			}
			if isInitialBox[x][y] {
				if grid[x][y] == rcGoal {
					grid[x][y] = rcBoxOnGoal
				} else {
					grid[x][y] = rcBox
				}
			}
			if x == playerStart.x && y == playerStart.y {
				if grid[x][y] == rcGoal {
					grid[x][y] = rcPlayerOnGoal
				} else {
					grid[x][y] = rcPlayer
				}
			}
		}
	}

	return renderGrid(grid, width, height)
}

func setWallsAroundUnreached(grid [][]byte, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if grid[x+dx][y+dy] == rcUnreached {
				grid[x+dx][y+dy] = rcWall
			}
		}
	}
}

func renderGrid(grid [][]byte, width, height int) string {
	var sb strings.Builder
	for y := 0; y < height; y++ {
		row := make([]byte, width)
		for x := 0; x < width; x++ {
			c := grid[x][y]
			if c == rcUnreached {
				c = rcFloor
			}
			row[x] = c
		}
		line := strings.TrimRight(string(row), " ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func inGrid(c coord, width, height int) bool {
	return c.x >= 0 && c.x < width && c.y >= 0 && c.y < height
}

func afterMove(c coord, move byte) coord {
	switch lower(move) {
	case 'u':
		return coord{c.x, c.y - 1}
	case 'd':
		return coord{c.x, c.y + 1}
	case 'l':
		return coord{c.x - 1, c.y}
	case 'r':
		return coord{c.x + 1, c.y}
	}
	return c
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// reconstructBounds computes board width/height and the player's starting
// coordinate the same way the original bounding-box pass does: uppercase
// (pushing) moves extend the bound by one extra cell for the pushed box.
func reconstructBounds(lurd string) (width, height int, player coord) {
	minX, minY, maxX, maxY := 0, 0, 0, 0
	x, y := 0, 0
	for i := 0; i < len(lurd); i++ {
		switch lurd[i] {
		case 'u':
			y--
			minY = min(minY, y)
		case 'd':
			y++
			maxY = max(maxY, y)
		case 'l':
			x--
			minX = min(minX, x)
		case 'r':
			x++
			maxX = max(maxX, x)
		case 'U':
			y--
			minY = min(minY, y-1)
		case 'D':
			y++
			maxY = max(maxY, y+1)
		case 'L':
			x--
			minX = min(minX, x-1)
		case 'R':
			x++
			maxX = max(maxX, x+1)
		}
	}
	width = maxX - minX + 3
	height = maxY - minY + 3
	player = coord{-minX + 1, -minY + 1}
	return width, height, player
}
