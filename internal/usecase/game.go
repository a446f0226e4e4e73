package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const tracerName = "github.com/rocketscienceinc/tictactoe-server/internal/usecase"

type GameUseCase interface {
	CreateGame(ctx context.Context) (*entity.GameState, error)
	GetGame(ctx context.Context, gameID string) (*entity.GameState, error)
	MakeMove(ctx context.Context, gameID string, space int) (*entity.GameState, error)
	ListGameIDs(ctx context.Context) []string
}

type gameRegistry interface {
	Create() (uuid.UUID, entity.Game)
	GetByID(id uuid.UUID) (entity.Game, error)
	ApplyMove(id uuid.UUID, raw int) (entity.Game, error)
	ListIDs() []uuid.UUID
}

type eventPublisher interface {
	Publish(ctx context.Context, event *entity.GameEvent) error
}

type gameUseCase struct {
	logger *slog.Logger
	tracer trace.Tracer

	registry  gameRegistry
	publisher eventPublisher
}

func NewGameUseCase(logger *slog.Logger, registry gameRegistry, publisher eventPublisher) GameUseCase {
	return &gameUseCase{
		logger:    logger.With("component", "usecase"),
		tracer:    otel.Tracer(tracerName),
		registry:  registry,
		publisher: publisher,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context) (*entity.GameState, error) {
	ctx, span := that.tracer.Start(ctx, "game.create")
	defer span.End()

	id, game := that.registry.Create()
	span.SetAttributes(attribute.String("game.id", id.String()))

	state := entity.NewGameState(id.String(), game)
	that.logger.Info("game created", "gameID", state.ID)

	that.publish(ctx, entity.EventGameCreated, state)

	return state, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.GameState, error) {
	_, span := that.tracer.Start(ctx, "game.get", trace.WithAttributes(attribute.String("game.id", gameID)))
	defer span.End()

	id, err := parseGameID(gameID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	game, err := that.registry.GetByID(id)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return entity.NewGameState(id.String(), game), nil
}

func (that *gameUseCase) MakeMove(ctx context.Context, gameID string, space int) (*entity.GameState, error) {
	ctx, span := that.tracer.Start(ctx, "game.move", trace.WithAttributes(
		attribute.String("game.id", gameID),
		attribute.Int("game.space", space),
	))
	defer span.End()

	log := that.logger.With("method", "MakeMove", "gameID", gameID, "space", space)

	id, err := parseGameID(gameID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	game, err := that.registry.ApplyMove(id, space)
	if err != nil {
		recordError(span, err)
		log.Debug("move rejected", "error", err)
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	state := entity.NewGameState(id.String(), game)
	log.Info("move applied", "turn", state.Turn, "moves", len(state.History))

	that.publish(ctx, entity.EventGameMoved, state)

	return state, nil
}

func (that *gameUseCase) ListGameIDs(ctx context.Context) []string {
	_, span := that.tracer.Start(ctx, "game.list")
	defer span.End()

	ids := that.registry.ListIDs()

	gameIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		gameIDs = append(gameIDs, id.String())
	}

	span.SetAttributes(attribute.Int("game.count", len(gameIDs)))

	return gameIDs
}

// publish - sends the event to the feed. A failed publish never fails the request.
func (that *gameUseCase) publish(ctx context.Context, eventType string, state *entity.GameState) {
	event := &entity.GameEvent{Type: eventType, Game: state}

	if err := that.publisher.Publish(ctx, event); err != nil {
		that.logger.Error("failed to publish game event", "type", eventType, "gameID", state.ID, "error", err)
	}
}

func parseGameID(gameID string) (uuid.UUID, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	return id, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
