package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/reversi/internal/repository"
	"github.com/rocketscienceinc/reversi/internal/reversi"
)

// SessionService creates games and moves them in and out of the save store.
type SessionService interface {
	NewGame(side, players int) (*reversi.Game, error)
	Save(ctx context.Context, name string, game *reversi.Game) error
	Load(ctx context.Context, name string) (*reversi.Game, error)
	Delete(ctx context.Context, name string) error
}

type sessionService struct {
	logger *slog.Logger

	games repository.GameRepository
}

func NewSessionService(logger *slog.Logger, games repository.GameRepository) SessionService {
	return &sessionService{
		logger: logger,
		games:  games,
	}
}

func (that *sessionService) NewGame(side, players int) (*reversi.Game, error) {
	game, err := reversi.NewGame(side, players)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("new game started", "side", side, "players", players)

	return game, nil
}

func (that *sessionService) Save(ctx context.Context, name string, game *reversi.Game) error {
	if err := that.games.CreateOrUpdate(ctx, name, game.Snapshot()); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game saved", "slot", name)

	return nil
}

func (that *sessionService) Load(ctx context.Context, name string) (*reversi.Game, error) {
	state, err := that.games.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	game, err := reversi.Restore(state)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	that.logger.Info("game loaded", "slot", name, "turn", game.Turn())

	return game, nil
}

func (that *sessionService) Delete(ctx context.Context, name string) error {
	if err := that.games.DeleteByName(ctx, name); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
