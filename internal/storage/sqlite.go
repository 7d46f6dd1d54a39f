// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// DateLayout is the format of the date column.
const DateLayout = "2006-01-02 15:04:05"

// HistoryLimit caps the number of records returned by PlayerHistory.
const HistoryLimit = 10

// ErrInvalidRecord is returned when a record fails validation before insert.
var ErrInvalidRecord = errors.New("storage: invalid game record")

// Store manages the SQLite database connection for game records.
// Records are append-only: once saved they are never updated or deleted.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID         int64
	PlayerName string
	Score      int
	Moves      int
	Pairs      int
	Elapsed    time.Duration
	Date       time.Time
	Difficulty string
}

// Validate checks the record before it is stored.
func (r GameRecord) Validate() error {
	switch {
	case strings.TrimSpace(r.PlayerName) == "":
		return fmt.Errorf("%w: empty player name", ErrInvalidRecord)
	case r.Score < 0:
		return fmt.Errorf("%w: negative score %d", ErrInvalidRecord, r.Score)
	case r.Moves < 0 || r.Pairs < 0:
		return fmt.Errorf("%w: negative counters", ErrInvalidRecord)
	case r.Elapsed < 0:
		return fmt.Errorf("%w: negative play time", ErrInvalidRecord)
	case r.Date.IsZero():
		return fmt.Errorf("%w: missing date", ErrInvalidRecord)
	}
	if d, err := memory.ParseDifficulty(r.Difficulty); err != nil || d.String() != r.Difficulty {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidRecord, r.Difficulty)
	}
	return nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			pairs INTEGER NOT NULL,
			time REAL NOT NULL,
			date TEXT NOT NULL,
			difficulty TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
		CREATE INDEX IF NOT EXISTS idx_games_player ON games(player_name, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished game and returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}
	result, err := s.db.Exec(
		`INSERT INTO games (player_name, score, moves, pairs, time, date, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.PlayerName, rec.Score, rec.Moves, rec.Pairs,
		rec.Elapsed.Seconds(), rec.Date.Format(DateLayout), rec.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves up to limit of the best games across all players,
// ordered by score descending. Equal scores keep insertion order.
// A limit of zero or less returns no records.
func (s *Store) TopScores(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.Query(
		`SELECT id, player_name, score, moves, pairs, time, date, difficulty
		 FROM games
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRecords(rows)
}

// PlayerHistory retrieves up to HistoryLimit of a player's best games.
func (s *Store) PlayerHistory(name string) ([]GameRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, player_name, score, moves, pairs, time, date, difficulty
		 FROM games
		 WHERE player_name = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		name, HistoryLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player history: %w", err)
	}
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]GameRecord, error) {
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var (
			r       GameRecord
			seconds float64
			date    string
		)
		if err := rows.Scan(&r.ID, &r.PlayerName, &r.Score, &r.Moves, &r.Pairs, &seconds, &date, &r.Difficulty); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(seconds * float64(time.Second))
		if parsed, err := time.ParseInLocation(DateLayout, date, time.Local); err == nil {
			r.Date = parsed
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighScore returns the best score ever recorded, or 0 when empty.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM games").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// DifficultyStats contains aggregated statistics for one difficulty.
type DifficultyStats struct {
	Difficulty string
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestTime   time.Duration
	LastPlayed time.Time
}

// StatsByDifficulty aggregates all games per difficulty label.
func (s *Store) StatsByDifficulty() (map[string]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), MIN(time), MAX(date)
		 FROM games
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get difficulty stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DifficultyStats)
	for rows.Next() {
		var (
			st       DifficultyStats
			bestTime float64
			last     string
		)
		if err := rows.Scan(&st.Difficulty, &st.GamesCount, &st.HighScore, &st.AvgScore, &bestTime, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(bestTime * float64(time.Second))
		if parsed, err := time.ParseInLocation(DateLayout, last, time.Local); err == nil {
			st.LastPlayed = parsed
		}
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
