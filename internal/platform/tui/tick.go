// Package tui provides the Bubble Tea front end for the memory game.
// It maps keys and mouse clicks to state machine inputs, renders every
// mode with lipgloss and serves the game over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxStep caps the simulated time of a single tick, so a stalled terminal
// does not resolve a pair before it was ever drawn.
const maxStep = 250 * time.Millisecond

// TickMsg is sent to advance the game simulation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// stepFor returns the simulated time between two ticks.
func stepFor(last, now time.Time, interval time.Duration) time.Duration {
	if last.IsZero() || now.Before(last) {
		return interval
	}
	return min(now.Sub(last), maxStep)
}
