package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS player_stats (
	player_name  TEXT PRIMARY KEY,
	games_played INTEGER NOT NULL DEFAULT 0,
	games_won    INTEGER NOT NULL DEFAULT 0,
	executions   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS game_history (
	game_id     TEXT NOT NULL,
	player_name TEXT NOT NULL,
	role_name   TEXT NOT NULL,
	team        TEXT NOT NULL,
	won         INTEGER NOT NULL,
	executed    INTEGER NOT NULL,
	PRIMARY KEY (game_id, player_name)
);
`

// Config holds configuration for the sqlite stats repository
type Config struct {
	DB *sqlx.DB
}

// sqliteRepository implements the Repository interface using sqlite
type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLite creates a new sqlite-backed stats repository and ensures the
// schema exists.
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	if _, err := cfg.DB.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create stats schema: %w", err)
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

// RecordGame updates per-player counters from one finished game
func (r *sqliteRepository) RecordGame(ctx context.Context, input *RecordGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, o := range input.Outcomes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO player_stats (player_name, games_played, games_won, executions)
			VALUES (?, 1, ?, ?)
			ON CONFLICT (player_name) DO UPDATE SET
				games_played = games_played + 1,
				games_won = games_won + excluded.games_won,
				executions = executions + excluded.executions`,
			o.PlayerName, boolToInt(o.Won), boolToInt(o.Executed))
		if err != nil {
			return fmt.Errorf("failed to upsert stats for %s: %w", o.PlayerName, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO game_history (game_id, player_name, role_name, team, won, executed)
			VALUES (?, ?, ?, ?, ?, ?)`,
			input.GameID, o.PlayerName, o.RoleName, o.Team, boolToInt(o.Won), boolToInt(o.Executed))
		if err != nil {
			return fmt.Errorf("failed to record history for %s: %w", o.PlayerName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stats: %w", err)
	}

	return nil
}

// GetLeaderboard returns all-time standings ordered by wins
func (r *sqliteRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	query := `
		SELECT player_name, games_played, games_won, executions
		FROM player_stats
		ORDER BY games_won DESC, games_played ASC, player_name ASC`

	args := []any{}
	if input != nil && input.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, input.Limit)
	}

	var entries []LeaderboardEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}

	return &GetLeaderboardOutput{Entries: entries}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
