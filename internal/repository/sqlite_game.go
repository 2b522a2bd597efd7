package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/entity"
)

type sqliteGame struct {
	conn *sql.DB
}

// NewSQLiteGameRepository stores save slots in a local SQLite file instead
// of redis, for setups without a running redis instance.
func NewSQLiteGameRepository(conn *sql.DB) GameRepository {
	return &sqliteGame{
		conn: conn,
	}
}

func (that *sqliteGame) CreateOrUpdate(ctx context.Context, name string, state *entity.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal game state: %w", err)
	}

	query := `INSERT INTO saves (name, state) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET state = excluded.state, saved_at = CURRENT_TIMESTAMP`

	_, err = that.conn.ExecContext(ctx, query, name, string(stateJSON))
	if err != nil {
		return fmt.Errorf("failed to set game state: %w", err)
	}

	return nil
}

func (that *sqliteGame) GetByName(ctx context.Context, name string) (*entity.GameState, error) {
	var stateJSON string

	query := `SELECT state FROM saves WHERE name = ?`

	err := that.conn.QueryRowContext(ctx, query, name).Scan(&stateJSON)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game state by name: %w", err)
	}

	var state entity.GameState
	if err = json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	return &state, nil
}

func (that *sqliteGame) DeleteByName(ctx context.Context, name string) error {
	query := `DELETE FROM saves WHERE name = ?`

	_, err := that.conn.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to delete game state by name: %w", err)
	}

	return nil
}
