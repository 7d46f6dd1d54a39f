// Package memory implements the card-matching core: cards and deck building,
// the per-game match session, scoring and play-time accounting.
// It has no UI or storage dependencies so it can be driven by any front end
// and tested in isolation.
package memory

import (
	"fmt"
	"strings"
)

// cycle moves v by delta positions through a closed ordered set of n values,
// wrapping around at both ends.
func cycle[T ~int](v T, n, delta int) T {
	i := (int(v) + delta) % n
	if i < 0 {
		i += n
	}
	return T(i)
}

// Difficulty selects the board layout.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExpert

	difficultyCount = 4
)

// Difficulties lists every difficulty in cycling order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}
}

// Next returns the following difficulty, wrapping Expert back to Easy.
func (d Difficulty) Next() Difficulty {
	return cycle(d, difficultyCount, 1)
}

// Previous returns the preceding difficulty, wrapping Easy to Expert.
func (d Difficulty) Previous() Difficulty {
	return cycle(d, difficultyCount, -1)
}

// String returns the label stored with persisted game records.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyExpert:
		return "Expert"
	default:
		return "Unknown"
	}
}

// Layout returns the board dimensions for this difficulty.
func (d Difficulty) Layout() Layout {
	switch d {
	case DifficultyEasy:
		return Layout{Rows: 3, Cols: 4, Pairs: 6}
	case DifficultyHard:
		return Layout{Rows: 4, Cols: 6, Pairs: 12}
	case DifficultyExpert:
		return Layout{Rows: 6, Cols: 6, Pairs: 18}
	default:
		return Layout{Rows: 4, Cols: 4, Pairs: 8}
	}
}

// ParseDifficulty accepts a case-insensitive difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return DifficultyMedium, fmt.Errorf("memory: unknown difficulty %q", s)
}

// Layout is the (rows, cols, pairs) triple of a board.
// Rows*Cols always equals 2*Pairs.
type Layout struct {
	Rows  int
	Cols  int
	Pairs int
}

// Cards returns the number of cards on the board.
func (l Layout) Cards() int {
	return l.Rows * l.Cols
}
