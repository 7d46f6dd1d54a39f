package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/assets"
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/flow"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		if err := config.ApplyDifficulty(&cfg, flagDifficulty); err != nil {
			return cfg, err
		}
	}
	if flagTheme != "" {
		if err := config.ApplyTheme(&cfg, flagTheme); err != nil {
			return cfg, err
		}
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagFPS > 0 {
		cfg.UI.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mustLoadConfig exits when no usable configuration can be built.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newLogger(w io.Writer, level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// playLogWriter returns where interactive play logs go. The alternate
// screen owns the terminal, so without --log-file logs are discarded.
func playLogWriter() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// gatewayOf keeps a nil store from turning into a non-nil interface.
func gatewayOf(store *storage.Store) flow.Gateway {
	if store == nil {
		return nil
	}
	return store
}

func newCatalog(cfg config.Config, logger *log.Logger) *assets.Catalog {
	return assets.NewCatalog(cfg.Assets.Dir, cfg.Assets.Extensions, cfg.Assets.Glyphs, logger)
}

// newRand returns a seeded source, or nil to let the machine seed from time.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

func machineOptions(cfg config.Config, symbols flow.SymbolSource, gw flow.Gateway, logger *log.Logger) flow.Options {
	return flow.Options{
		Rules:      cfg.Rules(),
		Difficulty: cfg.DifficultyValue(),
		Theme:      cfg.ThemeValue(),
		NameMaxLen: cfg.Game.NameMaxLen,
		Sound:      cfg.UI.Sound,
		Symbols:    symbols,
		Gateway:    gw,
		Logger:     logger,
		Rand:       newRand(flagSeed),
	}
}
