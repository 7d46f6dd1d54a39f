package memory

import (
	"fmt"
	"time"
)

// ScoreRules holds the tunable scoring coefficients.
type ScoreRules struct {
	PairPoints      int                // points per matched pair
	MovePenalty     int                // points lost per move beyond the minimum
	CompletionBonus int                // added once every pair is found
	Multipliers     map[Difficulty]int // percent applied to pair points; missing = 100
}

// DefaultScoreRules returns the built-in coefficients.
func DefaultScoreRules() ScoreRules {
	return ScoreRules{
		PairPoints:      100,
		MovePenalty:     10,
		CompletionBonus: 200,
		Multipliers: map[Difficulty]int{
			DifficultyEasy:   100,
			DifficultyMedium: 150,
			DifficultyHard:   200,
			DifficultyExpert: 300,
		},
	}
}

// Score computes the score for a game state. It is pure: the same inputs
// always give the same result. It never decreases as pairs grows and never
// goes below zero. Moves up to totalPairs (the minimum possible) are free.
func (r ScoreRules) Score(pairs, moves, totalPairs int, d Difficulty) int {
	pairs = max(pairs, 0)

	percent := 100
	if p, ok := r.Multipliers[d]; ok {
		percent = p
	}

	gained := pairs * r.PairPoints
	if totalPairs > 0 && pairs >= totalPairs {
		gained += r.CompletionBonus
	}
	gained = gained * percent / 100

	excess := max(moves-totalPairs, 0)
	return max(gained-excess*r.MovePenalty, 0)
}

// SurrenderScore is the score kept when a player gives up: half, truncated.
func SurrenderScore(score int) int {
	return score / 2
}

// Clock accumulates play time from simulation ticks. Time only accrues
// while the clock is running, so paused wall time is never counted.
type Clock struct {
	elapsed time.Duration
	running bool
}

// Start resumes accrual.
func (c *Clock) Start() {
	c.running = true
}

// Stop freezes accrual.
func (c *Clock) Stop() {
	c.running = false
}

// Running reports whether time is accruing.
func (c *Clock) Running() bool {
	return c.running
}

// Advance adds dt if the clock is running.
func (c *Clock) Advance(dt time.Duration) {
	if c.running && dt > 0 {
		c.elapsed += dt
	}
}

// Elapsed returns the accrued play time.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Reset zeroes and stops the clock.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.running = false
}

// FormatElapsed renders a duration as MM:SS.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
