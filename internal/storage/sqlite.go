package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT NOT NULL,
	run_id     TEXT NOT NULL,
	score      INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

CREATE TABLE IF NOT EXISTS best_scores (
	game_id    TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

const (
	sqliteInsertRun = `INSERT INTO scores (game_id, run_id, score) VALUES (?, ?, ?)`
	sqliteTopRuns   = `SELECT id, game_id, run_id, score, created_at FROM scores
		WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`
	sqliteMaxRun  = `SELECT MAX(score) FROM scores WHERE game_id = ?`
	sqliteBest    = `SELECT value FROM best_scores WHERE game_id = ?`
	sqliteRaise   = `INSERT INTO best_scores (game_id, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(game_id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		WHERE CAST(best_scores.value AS INTEGER) < CAST(excluded.value AS INTEGER)
		   OR best_scores.value = ''
		   OR best_scores.value GLOB '*[^0-9]*'
		   OR length(best_scores.value) > 18`
	sqliteAggregate = `SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		FROM scores WHERE game_id = ?`
	sqliteLastRun = `SELECT created_at FROM scores WHERE game_id = ? ORDER BY id DESC LIMIT 1`
)

// SQLiteStore keeps run history and best scores in one SQLite file through
// the cgo-free modernc driver.
type SQLiteStore struct {
	db *sql.DB
}

var _ Backend = (*SQLiteStore)(nil)

// OpenSQLite opens the database at path, creating the file, its parent
// directories and the schema as needed. A leading ~ is expanded.
func OpenSQLite(path string) (*SQLiteStore, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One connection: SSH sessions write through the same store.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveScore records a finished run for the given game.
func (s *SQLiteStore) SaveScore(gameID string, score int) (string, error) {
	runID := uuid.NewString()
	if _, err := s.db.Exec(sqliteInsertRun, gameID, runID, score); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	return runID, nil
}

// TopScores returns up to limit runs, highest first; ties keep the older
// run first. A non-positive limit means 10.
func (s *SQLiteStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(sqliteTopRuns, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.RunID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read scores: %w", err)
	}
	return entries, nil
}

// HighScore returns the best recorded run, or 0 with no history.
func (s *SQLiteStore) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow(sqliteMaxRun, gameID).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// BestValue returns the raw stored best score.
func (s *SQLiteStore) BestValue(gameID string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(sqliteBest, gameID).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return value, true, nil
}

// RaiseBest stores best unless a higher one is stored. A malformed stored
// value casts to 0 and is replaced.
func (s *SQLiteStore) RaiseBest(gameID string, best int) error {
	if _, err := s.db.Exec(sqliteRaise, gameID, FormatBest(best)); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Stats summarizes the run history of gameID.
func (s *SQLiteStore) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	err := s.db.QueryRow(sqliteAggregate, gameID).
		Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(sqliteLastRun, gameID).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}
	return stats, nil
}

// ClearScores deletes all scores and the best score for the given game.
func (s *SQLiteStore) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM best_scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
