// Package storage provides score persistence for the flappy frontends.
//
// Two kinds of stores exist. Backends (SQLite, Postgres) keep a history of
// finished runs plus a best score per game and are adapted to the game by
// GameScores. LocalStore keeps only the best score in per-user save data,
// the way a browser keeps it in local storage.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedBest is returned when a stored best score is not a
// non-negative integer.
var ErrMalformedBest = errors.New("storage: malformed best score")

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	RunID     string
	Score     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Backend is a score database shared by any number of sessions.
type Backend interface {
	// SaveScore records a finished run and returns its run ID.
	SaveScore(gameID string, score int) (string, error)
	// TopScores returns up to limit runs, best first.
	TopScores(gameID string, limit int) ([]ScoreEntry, error)
	// HighScore returns the highest recorded run, 0 if none.
	HighScore(gameID string) (int, error)
	// BestValue returns the stored best score as written. ok is false when
	// nothing is stored.
	BestValue(gameID string) (value string, ok bool, err error)
	// RaiseBest stores best unless a higher valid best is already stored.
	RaiseBest(gameID string, best int) error
	// Stats aggregates the run history.
	Stats(gameID string) (*GameStats, error)
	// ClearScores deletes the run history and the best score.
	ClearScores(gameID string) error
	Close() error
}

// Open opens the backend named by dsn: a postgres:// or postgresql:// URL
// selects Postgres, anything else is a SQLite file path.
func Open(dsn string) (Backend, error) {
	if IsPostgresDSN(dsn) {
		return OpenPostgres(dsn)
	}
	return OpenSQLite(dsn)
}

// IsPostgresDSN reports whether dsn is a Postgres connection URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// ParseBest converts a stored best score to an int.
func ParseBest(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedBest, value)
	}
	return n, nil
}

// FormatBest converts a best score to its stored text form.
func FormatBest(best int) string {
	return strconv.Itoa(best)
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// parseTimestamp handles both time.Time and string datetime columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
