// Package config provides YAML-based configuration loading for the memory
// game, with environment overrides and validation.
package config

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// Config is the complete runtime configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Scoring ScoringConfig `yaml:"scoring"`
	Assets  AssetsConfig  `yaml:"assets"`
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds session defaults and timing.
type GameConfig struct {
	Difficulty  string        `yaml:"difficulty" env:"MEMORY_DIFFICULTY" validate:"required,difficulty"`
	Theme       string        `yaml:"theme" env:"MEMORY_THEME" validate:"required,theme"`
	NameMaxLen  int           `yaml:"name_max_len" validate:"min=1,max=64"`
	FlipDelay   time.Duration `yaml:"flip_delay" validate:"gt=0"`
	SettleDelay time.Duration `yaml:"settle_delay" validate:"gt=0"`
}

// ScoringConfig holds the score coefficients.
// Multipliers are percentages keyed by difficulty name.
type ScoringConfig struct {
	PairPoints      int            `yaml:"pair_points" validate:"gt=0"`
	MovePenalty     int            `yaml:"move_penalty" validate:"gte=0"`
	CompletionBonus int            `yaml:"completion_bonus" validate:"gte=0"`
	Multipliers     map[string]int `yaml:"multipliers" validate:"dive,keys,difficulty,endkeys,gt=0"`
}

// AssetsConfig describes where card faces come from.
// Glyphs are keyed by theme folder name and used when a folder has no images.
type AssetsConfig struct {
	Dir        string              `yaml:"dir" env:"MEMORY_ASSETS_DIR"`
	Extensions []string            `yaml:"extensions" validate:"min=1,dive,startswith=."`
	Glyphs     map[string][]string `yaml:"glyphs" validate:"dive,keys,theme,endkeys,dive,required"`
}

// StorageConfig holds the leaderboard database location.
type StorageConfig struct {
	Path string `yaml:"path" env:"MEMORY_DB_PATH" validate:"required"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	TickRate int      `yaml:"tick_rate" validate:"gte=1,lte=240"`
	Sound    bool     `yaml:"sound"`
	Contact  []string `yaml:"contact"`
}

// LogConfig holds the logger level.
type LogConfig struct {
	Level string `yaml:"level" env:"MEMORY_LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// DifficultyValue returns the configured default difficulty.
// Config is validated on load, so the fallback only applies to hand-built values.
func (c Config) DifficultyValue() memory.Difficulty {
	d, err := memory.ParseDifficulty(c.Game.Difficulty)
	if err != nil {
		return memory.DifficultyMedium
	}
	return d
}

// ThemeValue returns the configured default theme.
func (c Config) ThemeValue() memory.Theme {
	t, err := memory.ParseTheme(c.Game.Theme)
	if err != nil {
		return memory.ThemeAnimals
	}
	return t
}

// Rules converts the game and scoring sections into session rules.
func (c Config) Rules() memory.Rules {
	mult := make(map[memory.Difficulty]int, len(c.Scoring.Multipliers))
	for name, pct := range c.Scoring.Multipliers {
		if d, err := memory.ParseDifficulty(name); err == nil {
			mult[d] = pct
		}
	}
	return memory.Rules{
		FlipDelay:   c.Game.FlipDelay,
		SettleDelay: c.Game.SettleDelay,
		Score: memory.ScoreRules{
			PairPoints:      c.Scoring.PairPoints,
			MovePenalty:     c.Scoring.MovePenalty,
			CompletionBonus: c.Scoring.CompletionBonus,
			Multipliers:     mult,
		},
	}
}

// TickInterval returns the duration of one UI tick.
func (c Config) TickInterval() time.Duration {
	if c.UI.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.UI.TickRate)
}
