package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// withFlags resets the global flags for one test.
func withFlags(t *testing.T, set func()) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	reset := func() {
		flagConfig, flagDBPath, flagDifficulty, flagTheme = "", "", "", ""
		flagFPS, flagSeed = 0, 0
		flagLogFile, flagLogLevel = "", ""
	}
	reset()
	set()
	t.Cleanup(reset)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	withFlags(t, func() {
		flagDifficulty = "expert"
		flagTheme = "emoji"
		flagDBPath = db
		flagFPS = 30
		flagLogLevel = "debug"
	})

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, memory.DifficultyExpert, cfg.DifficultyValue())
	assert.Equal(t, memory.ThemeEmoji, cfg.ThemeValue())
	assert.Equal(t, db, cfg.Storage.Path)
	assert.Equal(t, 30, cfg.UI.TickRate)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		set  func()
	}{
		{"difficulty", func() { flagDifficulty = "impossible" }},
		{"theme", func() { flagTheme = "cars" }},
		{"log level", func() { flagLogLevel = "loud" }},
		{"fps", func() { flagFPS = 1000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, tt.set)
			_, err := loadConfig()
			assert.Error(t, err)
		})
	}
}

func TestGatewayOfNilStore(t *testing.T) {
	assert.Nil(t, gatewayOf(nil))

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	assert.NotNil(t, gatewayOf(store))
}

func TestNewRand(t *testing.T) {
	assert.Nil(t, newRand(0))

	a, b := newRand(7), newRand(7)
	require.NotNil(t, a)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestRepeatsFrom(t *testing.T) {
	assert.Equal(t, "-", repeatsFrom(0))
	assert.Equal(t, "Easy", repeatsFrom(4))
	assert.Equal(t, "Medium", repeatsFrom(6))
	assert.Equal(t, "Expert", repeatsFrom(12))
	assert.Equal(t, "never", repeatsFrom(18))
}

func TestHistoryIsReadOnly(t *testing.T) {
	assert.Nil(t, historyCmd.Flags().Lookup("clear"))
	assert.NoError(t, historyCmd.Args(historyCmd, []string{"alice"}))
	assert.Error(t, historyCmd.Args(historyCmd, nil))
}
