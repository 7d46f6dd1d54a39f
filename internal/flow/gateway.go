package flow

import (
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Gateway persists finished games and serves the leaderboard.
// *storage.Store implements it.
type Gateway interface {
	SaveGame(rec storage.GameRecord) (int64, error)
	TopScores(limit int) ([]storage.GameRecord, error)
	PlayerHistory(name string) ([]storage.GameRecord, error)
}

var _ Gateway = (*storage.Store)(nil)

// SymbolSource lists the card faces for a theme. An empty list is allowed.
type SymbolSource interface {
	Symbols(theme memory.Theme) []string
}

// SymbolFunc adapts a function to SymbolSource.
type SymbolFunc func(theme memory.Theme) []string

func (f SymbolFunc) Symbols(theme memory.Theme) []string { return f(theme) }

// Player is the person playing the current game.
type Player struct {
	Name     string
	Moves    int
	Pairs    int
	Score    int
	Finished bool
}
