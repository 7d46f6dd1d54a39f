package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))
	assert.False(t, r.Contains(1, 3))
}

func TestCardAtMatchesCardRect(t *testing.T) {
	for _, d := range memory.Difficulties() {
		l := d.Layout()
		for i := 0; i < l.Cards(); i++ {
			r := cardRect(l, i)
			assert.Equal(t, i, cardAt(l, r.X, r.Y), "%s card %d top-left", d, i)
			assert.Equal(t, i, cardAt(l, r.X+r.W-1, r.Y+r.H-1), "%s card %d bottom-right", d, i)
		}
	}
}

func TestCardAtMisses(t *testing.T) {
	l := memory.DifficultyEasy.Layout()

	tests := []struct {
		name string
		x, y int
	}{
		{"title line", boardX, 0},
		{"left padding", 0, boardY},
		{"gap between columns", boardX + cardW, boardY},
		{"right of board", boardX + l.Cols*(cardW+cardGap), boardY},
		{"below board", boardX, boardY + l.Rows*cardH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, -1, cardAt(l, tt.x, tt.y))
		})
	}

	assert.Equal(t, -1, cardAt(memory.Layout{}, boardX, boardY))
}

func TestMoveCursor(t *testing.T) {
	l := memory.DifficultyEasy.Layout() // 3x4

	assert.Equal(t, 1, moveCursor(l, 0, 1, 0))
	assert.Equal(t, 4, moveCursor(l, 0, 0, 1))
	assert.Equal(t, 0, moveCursor(l, 0, -1, 0), "clamped left")
	assert.Equal(t, 0, moveCursor(l, 0, 0, -1), "clamped top")
	assert.Equal(t, 11, moveCursor(l, 11, 1, 1), "clamped bottom-right")
	assert.Equal(t, 3, moveCursor(l, 3, 1, 0), "does not wrap rows")
	assert.Equal(t, 0, moveCursor(memory.Layout{}, 5, 1, 1))
}

func TestStepFor(t *testing.T) {
	interval := time.Second / 60
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, interval, stepFor(time.Time{}, now, interval), "first tick")
	assert.Equal(t, interval, stepFor(now, now.Add(-time.Second), interval), "clock went back")
	assert.Equal(t, 20*time.Millisecond, stepFor(now, now.Add(20*time.Millisecond), interval))
	assert.Equal(t, maxStep, stepFor(now, now.Add(5*time.Second), interval), "stall capped")
}
