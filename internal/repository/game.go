package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/reversi/internal/entity"
)

var ErrGameNotFound = errors.New("saved game not found")

// GameRepository stores serialized game states under named save slots.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, name string, state *entity.GameState) error
	GetByName(ctx context.Context, name string) (*entity.GameState, error)
	DeleteByName(ctx context.Context, name string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, name string, state *entity.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal game state: %w", err)
	}

	gameKey := "game:" + name
	err = that.client.Set(ctx, gameKey, stateJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game state: %w", err)
	}

	return nil
}

func (that *dbGame) GetByName(ctx context.Context, name string) (*entity.GameState, error) {
	gameKey := "game:" + name

	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game state by name: %w", err)
	}

	var state entity.GameState
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	return &state, nil
}

func (that *dbGame) DeleteByName(ctx context.Context, name string) error {
	gameKey := "game:" + name

	err := that.client.Del(ctx, gameKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete game state by name: %w", err)
	}

	return nil
}
