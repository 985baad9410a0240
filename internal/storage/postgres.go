package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// queryTimeout bounds every Postgres round trip. The engine calls the store
// from its frame loop and must not hang on a dead server.
const queryTimeout = 5 * time.Second

// PostgresStore is a Backend on a shared Postgres database, for a
// leaderboard across hosts.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Backend = (*PostgresStore)(nil)

// OpenPostgres connects to the database at connStr and runs migrations.
// The caller is responsible for calling Close on the store.
func OpenPostgres(connStr string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: cannot connect to postgres: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id BIGSERIAL PRIMARY KEY,
			game_id TEXT NOT NULL,
			run_id UUID NOT NULL,
			score INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			game_id TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := s.pool.Exec(ctx, schema)
	return err
}

// Close closes every pooled connection.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// SaveScore records a finished run for the given game.
func (s *PostgresStore) SaveScore(gameID string, score int) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	runID := uuid.New()
	_, err := s.pool.Exec(ctx,
		"INSERT INTO scores (game_id, run_id, score) VALUES ($1, $2, $3)",
		gameID, runID, score,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	return runID.String(), nil
}

// TopScores retrieves the top N scores for the given game.
func (s *PostgresStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, game_id, run_id, score, created_at
		 FROM scores
		 WHERE game_id = $1
		 ORDER BY score DESC, id ASC
		 LIMIT $2`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var runID uuid.UUID
		if err := rows.Scan(&e.ID, &e.GameID, &runID, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.RunID = runID.String()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest recorded run for the given game.
func (s *PostgresStore) HighScore(gameID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var score *int
	err := s.pool.QueryRow(ctx,
		"SELECT MAX(score) FROM scores WHERE game_id = $1",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if score == nil {
		return 0, nil
	}
	return *score, nil
}

// BestValue returns the raw stored best score.
func (s *PostgresStore) BestValue(gameID string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var value string
	err := s.pool.QueryRow(ctx,
		"SELECT value FROM best_scores WHERE game_id = $1",
		gameID,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return value, true, nil
}

// RaiseBest stores best unless a higher valid one is stored.
func (s *PostgresStore) RaiseBest(gameID string, best int) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO best_scores (game_id, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (game_id) DO UPDATE
		 SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
		 WHERE CASE
		     WHEN best_scores.value ~ '^[0-9]{1,18}$'
		         THEN best_scores.value::bigint < EXCLUDED.value::bigint
		     ELSE true
		 END`,
		gameID, FormatBest(best),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific game.
func (s *PostgresStore) Stats(gameID string) (*GameStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	stats := &GameStats{GameID: gameID}
	var lastPlayed *time.Time
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)::float8,
		        COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = $1`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if lastPlayed != nil {
		stats.LastPlayed = *lastPlayed
	}
	return stats, nil
}

// ClearScores deletes all scores and the best score for the given game.
func (s *PostgresStore) ClearScores(gameID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM scores WHERE game_id = $1", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM best_scores WHERE game_id = $1", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
