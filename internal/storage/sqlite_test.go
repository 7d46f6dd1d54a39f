package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(name string, score int) GameRecord {
	return GameRecord{
		PlayerName: name,
		Score:      score,
		Moves:      8,
		Pairs:      6,
		Elapsed:    42500 * time.Millisecond,
		Date:       time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local),
		Difficulty: "Easy",
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreSingleRecordRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := record("alice", 640)
	id, err := store.SaveGame(want)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := store.TopScores(10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "alice", got[0].PlayerName)
	assert.Equal(t, 640, got[0].Score)
	assert.Equal(t, 8, got[0].Moves)
	assert.Equal(t, 6, got[0].Pairs)
	assert.Equal(t, 42500*time.Millisecond, got[0].Elapsed)
	assert.True(t, want.Date.Equal(got[0].Date))
	assert.Equal(t, "Easy", got[0].Difficulty)
}

func TestStoreTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{50, 90, 70} {
		_, err := store.SaveGame(record("bob", s))
		require.NoError(t, err)
	}

	got, err := store.TopScores(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{90, 70, 50}, []int{got[0].Score, got[1].Score, got[2].Score})
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	names := []string{"a", "b", "c", "d", "e"}
	for i, n := range names {
		score := (i + 1) * 100
		if n == "e" {
			score = 400
		}
		_, err := store.SaveGame(record(n, score))
		require.NoError(t, err)
	}

	got, err := store.TopScores(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// d and e tie at 400; d was inserted first
	assert.Equal(t, "d", got[0].PlayerName)
	assert.Equal(t, "e", got[1].PlayerName)
	assert.Equal(t, "c", got[2].PlayerName)
}

func TestStorePlayerHistory(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 12; i++ {
		_, err := store.SaveGame(record("carol", i*10))
		require.NoError(t, err)
	}
	_, err := store.SaveGame(record("dave", 999))
	require.NoError(t, err)

	got, err := store.PlayerHistory("carol")
	require.NoError(t, err)
	require.Len(t, got, HistoryLimit)
	assert.Equal(t, 110, got[0].Score)
	for _, r := range got {
		assert.Equal(t, "carol", r.PlayerName)
	}

	none, err := store.PlayerHistory("nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStoreRejectsInvalidRecords(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name   string
		mutate func(r *GameRecord)
	}{
		{"empty name", func(r *GameRecord) { r.PlayerName = "  " }},
		{"negative score", func(r *GameRecord) { r.Score = -1 }},
		{"negative moves", func(r *GameRecord) { r.Moves = -1 }},
		{"negative time", func(r *GameRecord) { r.Elapsed = -time.Second }},
		{"zero date", func(r *GameRecord) { r.Date = time.Time{} }},
		{"empty difficulty", func(r *GameRecord) { r.Difficulty = "" }},
		{"unknown difficulty", func(r *GameRecord) { r.Difficulty = "Nightmare" }},
		{"lowercase difficulty", func(r *GameRecord) { r.Difficulty = "easy" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record("x", 10)
			tt.mutate(&r)
			_, err := store.SaveGame(r)
			assert.True(t, errors.Is(err, ErrInvalidRecord), "got %v", err)
		})
	}

	got, err := store.TopScores(10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreAcceptsEveryDifficultyLabel(t *testing.T) {
	store := openTestStore(t)

	for _, label := range []string{"Easy", "Medium", "Hard", "Expert"} {
		r := record("jo", 10)
		r.Difficulty = label
		_, err := store.SaveGame(r)
		assert.NoError(t, err, label)
	}
}

func TestStoreTopScoresNonPositiveLimit(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 20} {
		_, err := store.SaveGame(record("kim", s))
		require.NoError(t, err)
	}

	for _, limit := range []int{0, -5} {
		got, err := store.TopScores(limit)
		require.NoError(t, err)
		assert.Empty(t, got, "limit %d", limit)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Zero(t, high)

	for _, s := range []int{100, 300, 200} {
		_, err := store.SaveGame(record("frank", s))
		require.NoError(t, err)
	}

	high, err = store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreStatsByDifficulty(t *testing.T) {
	store := openTestStore(t)

	easy := record("ivy", 100)
	hard := record("ivy", 500)
	hard.Difficulty = "Hard"
	hard.Elapsed = 90 * time.Second
	hard2 := hard
	hard2.Score = 300
	hard2.Elapsed = 60 * time.Second

	for _, r := range []GameRecord{easy, hard, hard2} {
		_, err := store.SaveGame(r)
		require.NoError(t, err)
	}

	stats, err := store.StatsByDifficulty()
	require.NoError(t, err)
	require.Contains(t, stats, "Hard")
	assert.Equal(t, 2, stats["Hard"].GamesCount)
	assert.Equal(t, 500, stats["Hard"].HighScore)
	assert.InDelta(t, 400.0, stats["Hard"].AvgScore, 0.001)
	assert.Equal(t, 60*time.Second, stats["Hard"].BestTime)
	assert.Equal(t, 1, stats["Easy"].GamesCount)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
}
