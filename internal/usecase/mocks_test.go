package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type mockRegistry struct {
	mock.Mock
}

func (that *mockRegistry) Create() (uuid.UUID, entity.Game) {
	args := that.Called()
	return args.Get(0).(uuid.UUID), args.Get(1).(entity.Game)
}

func (that *mockRegistry) GetByID(id uuid.UUID) (entity.Game, error) {
	args := that.Called(id)
	return args.Get(0).(entity.Game), args.Error(1)
}

func (that *mockRegistry) ApplyMove(id uuid.UUID, raw int) (entity.Game, error) {
	args := that.Called(id, raw)
	return args.Get(0).(entity.Game), args.Error(1)
}

func (that *mockRegistry) ListIDs() []uuid.UUID {
	args := that.Called()
	return args.Get(0).([]uuid.UUID)
}

type mockPublisher struct {
	mock.Mock
}

func (that *mockPublisher) Publish(ctx context.Context, event *entity.GameEvent) error {
	args := that.Called(ctx, event)
	return args.Error(0)
}
