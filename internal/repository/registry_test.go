package repository

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

func TestGameRegistry_Create(t *testing.T) {
	// Given: an empty registry
	registry := NewGameRegistry(entity.Rules{})

	// When: two games are created
	firstID, first := registry.Create()
	secondID, _ := registry.Create()

	// Then: they get distinct identifiers and start in the initial state
	assert.NotEqual(t, firstID, secondID)
	assert.Equal(t, entity.NewGame(), first)
	assert.Equal(t, 2, registry.Len())
	assert.ElementsMatch(t, []uuid.UUID{firstID, secondID}, registry.ListIDs())
}

func TestGameRegistry_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		registry := NewGameRegistry(entity.Rules{})
		id, _ := registry.Create()

		game, err := registry.GetByID(id)

		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, game.Turn())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		registry := NewGameRegistry(entity.Rules{})

		_, err := registry.GetByID(uuid.New())

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("GetByID returns a snapshot", func(t *testing.T) {
		// Given: a snapshot taken before a move
		registry := NewGameRegistry(entity.Rules{})
		id, _ := registry.Create()
		snapshot, err := registry.GetByID(id)
		require.NoError(t, err)

		// When: the snapshot is mutated locally
		require.NoError(t, snapshot.ApplyMove(0))

		// Then: the registry copy is untouched
		stored, err := registry.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.History().Len())
	})
}

func TestGameRegistry_ApplyMove(t *testing.T) {
	t.Run("Stores the updated game", func(t *testing.T) {
		// Given: a new game
		registry := NewGameRegistry(entity.Rules{})
		id, _ := registry.Create()

		// When: X plays the center
		game, err := registry.ApplyMove(id, 4)
		require.NoError(t, err)

		// Then: the returned and the stored game both reflect the move
		stored, err := registry.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
		assert.Equal(t, entity.MarkX, stored.Board().Get(4))
		assert.Equal(t, entity.MarkO, stored.Turn())
		assert.Equal(t, 1, stored.History().Len())
	})

	t.Run("Same space twice records two entries", func(t *testing.T) {
		registry := NewGameRegistry(entity.Rules{})
		id, _ := registry.Create()

		_, err := registry.ApplyMove(id, 4)
		require.NoError(t, err)
		game, err := registry.ApplyMove(id, 4)
		require.NoError(t, err)

		assert.Equal(t, 2, game.History().Len())
		assert.Equal(t, entity.MarkX, game.Turn())
	})

	t.Run("Unknown game has no side effects", func(t *testing.T) {
		registry := NewGameRegistry(entity.Rules{})
		id, _ := registry.Create()

		_, err := registry.ApplyMove(uuid.New(), 0)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Equal(t, 1, registry.Len())
		stored, err := registry.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, entity.NewGame(), stored)
	})

	t.Run("Rejected move keeps the stored game", func(t *testing.T) {
		registry := NewGameRegistry(entity.Rules{})
		id, _ := registry.Create()
		_, err := registry.ApplyMove(id, 1)
		require.NoError(t, err)

		_, err = registry.ApplyMove(id, 42)

		require.ErrorIs(t, err, apperror.ErrInvalidSpace)
		stored, err := registry.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.History().Len())
		assert.Equal(t, entity.MarkO, stored.Turn())
	})

	t.Run("Tenth move fails with ErrHistoryFull", func(t *testing.T) {
		registry := NewGameRegistry(entity.Rules{})
		id, _ := registry.Create()
		for raw := 0; raw < entity.BoardSize; raw++ {
			_, err := registry.ApplyMove(id, raw)
			require.NoError(t, err)
		}

		_, err := registry.ApplyMove(id, 0)

		require.ErrorIs(t, err, apperror.ErrHistoryFull)
	})

	t.Run("Strict rules are applied to created games", func(t *testing.T) {
		registry := NewGameRegistry(entity.Rules{StrictMoves: true})
		id, _ := registry.Create()
		_, err := registry.ApplyMove(id, 4)
		require.NoError(t, err)

		_, err = registry.ApplyMove(id, 4)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestGameRegistry_ConcurrentMoves(t *testing.T) {
	t.Run("Two moves on the same game are both applied", func(t *testing.T) {
		// Given: a single game
		registry := NewGameRegistry(entity.Rules{})
		id, _ := registry.Create()

		// When: two moves on different spaces race
		var wg sync.WaitGroup
		for _, raw := range []int{0, 8} {
			wg.Add(1)
			go func(raw int) {
				defer wg.Done()
				_, err := registry.ApplyMove(id, raw)
				assert.NoError(t, err)
			}(raw)
		}
		wg.Wait()

		// Then: no update is lost
		game, err := registry.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, 2, game.History().Len())
		assert.ElementsMatch(t, []entity.Space{0, 8}, game.History().Spaces())
		assert.Equal(t, entity.MarkX, game.Turn())
		assert.ElementsMatch(t,
			[]string{entity.PlayerX, entity.PlayerO},
			[]string{game.Board().Get(0).Label(), game.Board().Get(8).Label()},
		)
	})

	t.Run("Many games are independent", func(t *testing.T) {
		registry := NewGameRegistry(entity.Rules{})

		const games = 32
		ids := make([]uuid.UUID, games)
		for i := range ids {
			ids[i], _ = registry.Create()
		}

		var wg sync.WaitGroup
		for _, id := range ids {
			for raw := 0; raw < entity.BoardSize; raw++ {
				wg.Add(1)
				go func(id uuid.UUID, raw int) {
					defer wg.Done()
					_, err := registry.ApplyMove(id, raw)
					assert.NoError(t, err)
				}(id, raw)
			}
		}
		wg.Wait()

		for _, id := range ids {
			game, err := registry.GetByID(id)
			require.NoError(t, err)
			assert.True(t, game.History().Full())
		}
	})
}
