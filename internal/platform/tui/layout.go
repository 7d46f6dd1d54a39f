package tui

import "github.com/vovakirdan/tui-memory/internal/memory"

// Card box geometry in terminal cells, borders included.
const (
	cardInnerW = 8
	cardW      = cardInnerW + 2
	cardH      = 3
	cardGap    = 1

	boardX = 2 // left padding of the board
	boardY = 2 // title line plus one blank line
)

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// cardRect returns the screen rectangle of the card at index.
func cardRect(l memory.Layout, index int) Rect {
	row, col := index/l.Cols, index%l.Cols
	return Rect{
		X: boardX + col*(cardW+cardGap),
		Y: boardY + row*cardH,
		W: cardW,
		H: cardH,
	}
}

// cardAt returns the index of the card under (x, y), or -1.
func cardAt(l memory.Layout, x, y int) int {
	if l.Cols == 0 {
		return -1
	}
	col := (x - boardX) / (cardW + cardGap)
	row := (y - boardY) / cardH
	if x < boardX || y < boardY || col >= l.Cols || row >= l.Rows {
		return -1
	}
	i := row*l.Cols + col
	if !cardRect(l, i).Contains(x, y) {
		return -1 // in the gap between cards
	}
	return i
}

// moveCursor moves a grid cursor by (dx, dy), clamped to the board.
func moveCursor(l memory.Layout, cursor, dx, dy int) int {
	if l.Cols == 0 {
		return 0
	}
	row := clamp(cursor/l.Cols+dy, 0, l.Rows-1)
	col := clamp(cursor%l.Cols+dx, 0, l.Cols-1)
	return row*l.Cols + col
}

// clamp restricts a value to be within [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
