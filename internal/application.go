package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/reversi/internal/config"
	"github.com/rocketscienceinc/reversi/internal/repository"
	"github.com/rocketscienceinc/reversi/internal/repository/storage"
	"github.com/rocketscienceinc/reversi/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/reversi/internal/service"
	"github.com/rocketscienceinc/reversi/internal/tui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo, closeStorage, err := newGameRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open save storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close save storage", "error", err)
		}
	}()

	sessionService := service.NewSessionService(logger, gameRepo)
	botService := service.NewBotService()

	game, err := sessionService.NewGame(conf.Board.Side, conf.Board.Players)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	log.Info("Starting board UI", "storage", conf.Storage.Driver)

	boardUI := tui.New(logger, conf, sessionService, botService)
	if err = boardUI.Run(ctx, game); err != nil {
		return fmt.Errorf("board UI error: %w", err)
	}

	return nil
}

// newGameRepository picks the save store by the configured driver: redis for
// a shared instance, sqlite for a local file.
func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage.Driver == "redis" {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Storage.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage.Connection), redisStorage.Close, nil
	}

	path, err := conf.Storage.GetSQLitePath()
	if err != nil {
		return nil, nil, err
	}

	sqliteStorage, err := sqlite.New(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
	}

	return repository.NewSQLiteGameRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
}
