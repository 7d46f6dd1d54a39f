package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	r := DefaultScoreRules()

	tests := []struct {
		name  string
		pairs int
		moves int
		total int
		diff  Difficulty
		want  int
	}{
		{"nothing", 0, 0, 6, DifficultyEasy, 0},
		{"one pair easy", 1, 1, 6, DifficultyEasy, 100},
		{"one pair expert", 1, 1, 18, DifficultyExpert, 300},
		{"perfect easy", 6, 6, 6, DifficultyEasy, 800},
		{"perfect medium", 8, 8, 8, DifficultyMedium, 1500},
		{"extra moves", 6, 10, 6, DifficultyEasy, 760},
		{"clamped", 0, 50, 6, DifficultyEasy, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Score(tt.pairs, tt.moves, tt.total, tt.diff))
		})
	}
}

func TestScoreMonotonicInPairs(t *testing.T) {
	r := DefaultScoreRules()
	for _, d := range Difficulties() {
		total := d.Layout().Pairs
		prev := -1
		for p := 0; p <= total; p++ {
			s := r.Score(p, total, total, d)
			assert.GreaterOrEqual(t, s, prev)
			prev = s
		}
	}
}

func TestSurrenderScore(t *testing.T) {
	assert.Equal(t, 0, SurrenderScore(0))
	assert.Equal(t, 0, SurrenderScore(1))
	assert.Equal(t, 75, SurrenderScore(151))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", FormatElapsed(0))
	assert.Equal(t, "01:05", FormatElapsed(65*time.Second+900*time.Millisecond))
	assert.Equal(t, "61:00", FormatElapsed(61*time.Minute))
}

func TestClock(t *testing.T) {
	var c Clock
	c.Advance(time.Second)
	assert.Zero(t, c.Elapsed())

	c.Start()
	c.Advance(time.Second)
	c.Advance(-time.Second)
	assert.Equal(t, time.Second, c.Elapsed())

	c.Stop()
	assert.False(t, c.Running())
	c.Advance(time.Minute)
	assert.Equal(t, time.Second, c.Elapsed())

	c.Reset()
	assert.Zero(t, c.Elapsed())
}
