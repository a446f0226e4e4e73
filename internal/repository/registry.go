package repository

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

// GameRegistry owns every game of the process. Callers only ever see copies.
type GameRegistry interface {
	Create() (uuid.UUID, entity.Game)
	GetByID(id uuid.UUID) (entity.Game, error)
	ApplyMove(id uuid.UUID, raw int) (entity.Game, error)
	ListIDs() []uuid.UUID
	Len() int
}

type memoryGames struct {
	mu    sync.RWMutex
	games map[uuid.UUID]entity.Game
	rules entity.Rules
}

func NewGameRegistry(rules entity.Rules) GameRegistry {
	return &memoryGames{
		games: make(map[uuid.UUID]entity.Game),
		rules: rules,
	}
}

// Create - stores a fresh game under a new random identifier.
func (that *memoryGames) Create() (uuid.UUID, entity.Game) {
	game := entity.NewGameWithRules(that.rules)

	that.mu.Lock()
	defer that.mu.Unlock()

	id := uuid.New()
	for {
		if _, exists := that.games[id]; !exists {
			break
		}
		id = uuid.New()
	}

	that.games[id] = game

	return id, game
}

func (that *memoryGames) GetByID(id uuid.UUID) (entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return entity.Game{}, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return game, nil
}

// ApplyMove - fetches the game, applies the move and stores it back as one step.
// The stored game is replaced only when the move is accepted.
func (that *memoryGames) ApplyMove(id uuid.UUID, raw int) (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return entity.Game{}, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	if err := game.ApplyMove(raw); err != nil {
		return game, err
	}

	that.games[id] = game

	return game, nil
}

func (that *memoryGames) ListIDs() []uuid.UUID {
	that.mu.RLock()
	defer that.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(that.games))
	for id := range that.games {
		ids = append(ids, id)
	}

	return ids
}

func (that *memoryGames) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.games)
}
