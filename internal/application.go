package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-server/internal/config"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-server/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-server/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-server/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-server/transport/rest"
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return Run(ctx, logger, conf)
}

// Run - wires the components and serves HTTP until ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	shutdownTracing, err := telemetry.Setup(ctx, conf.Tracing)
	if err != nil {
		return fmt.Errorf("could not set up tracing: %w", err)
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("could not flush traces", "error", err)
		}
	}()

	publisher, closePublisher, err := newPublisher(ctx, log, conf.Redis)
	if err != nil {
		return err
	}

	defer closePublisher()

	registry := repository.NewGameRegistry(entity.Rules{StrictMoves: conf.Rules.StrictMoves})
	gameUseCase := usecase.NewGameUseCase(logger, registry, publisher)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "strictMoves", conf.Rules.StrictMoves)

	if err = rest.New(logger, gameUseCase).Start(ctx, conf.HTTPPort, conf.ShutdownTimeout); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down", "games", registry.Len())

	return nil
}

type gameEventPublisher interface {
	Publish(ctx context.Context, event *entity.GameEvent) error
}

func newPublisher(ctx context.Context, log *slog.Logger, conf config.Redis) (gameEventPublisher, func(), error) {
	if !conf.Enabled {
		return redis.NopPublisher{}, func() {}, nil
	}

	client, err := storage.NewRedisStorage(ctx, conf.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	log.Info("Publishing game events", "addr", conf.GetRedisAddr(), "channel", conf.Channel)

	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis client", "error", err)
		}
	}

	return redis.NewPublisher(client, conf.Channel), closeClient, nil
}
