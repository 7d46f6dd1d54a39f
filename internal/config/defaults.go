package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}

// Default returns the hardcoded configuration used when no file loads.
func Default() Config {
	return Config{
		Game: GameConfig{
			Difficulty:  "Medium",
			Theme:       "Animals",
			NameMaxLen:  20,
			FlipDelay:   300 * time.Millisecond,
			SettleDelay: 800 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			PairPoints:      100,
			MovePenalty:     10,
			CompletionBonus: 200,
			Multipliers: map[string]int{
				"Easy":   100,
				"Medium": 150,
				"Hard":   200,
				"Expert": 300,
			},
		},
		Assets: AssetsConfig{
			Dir:        "assets/images",
			Extensions: []string{".png", ".jpg", ".jpeg", ".bmp"},
			Glyphs: map[string][]string{
				"animals": {"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯", "🦁", "🐮", "🐷", "🐸", "🐵", "🐔", "🐧", "🐦"},
				"fruits":  {"🍎", "🍐", "🍊", "🍋", "🍌", "🍉", "🍇", "🍓", "🫐", "🍈", "🍒", "🍑", "🥭", "🍍", "🥥", "🥝", "🍅", "🥑"},
				"emoji":   {"😀", "😂", "😍", "😎", "🤔", "😴", "🤯", "🥳", "😱", "🤖", "👻", "💩", "😇", "🤠", "🥶", "🤡", "😈", "👽"},
				"memes":   {"doge", "stonks", "pepe", "nyan", "troll", "rick", "grumpy", "wojak", "chad", "shiba", "keanu", "drake", "bongo", "pog", "kappa", "yeet", "bruh", "cope"},
				"symbols": {"★", "☀", "☂", "♠", "♣", "♥", "♦", "♪", "☯", "⚓", "⚡", "☘", "♛", "✿", "❄", "✈", "☎", "⌛"},
			},
		},
		Storage: StorageConfig{
			Path: "~/.memory/memory_game.db",
		},
		UI: UIConfig{
			TickRate: 60,
			Sound:    true,
			Contact: []string{
				"Memory: a terminal card-matching game",
				"Issues and ideas: github.com/vovakirdan/tui-memory",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
