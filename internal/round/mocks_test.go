package round

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/luckpix/raspadinha/internal/domain"
	"github.com/luckpix/raspadinha/internal/repository"
)

// MockRulesService is a mock implementation of the rules.Service interface
type MockRulesService struct {
	mock.Mock
}

func (m *MockRulesService) GetGame(ctx context.Context, gameID uuid.UUID) (*domain.Game, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockRulesService) ListGames(ctx context.Context) ([]domain.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Game), args.Error(1)
}

func (m *MockRulesService) SaveGame(ctx context.Context, game *domain.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockRulesService) CreateOverride(ctx context.Context, override *domain.Override) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockRulesService) CancelOverride(ctx context.Context, overrideID uuid.UUID) error {
	args := m.Called(ctx, overrideID)
	return args.Error(0)
}

// MockRoundRepository is a mock implementation of the repository.Round interface
type MockRoundRepository struct {
	mock.Mock
}

func (m *MockRoundRepository) BeginTx(ctx context.Context) (repository.RoundTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.RoundTx), args.Error(1)
}

// MockRoundTx is a mock implementation of the repository.RoundTx interface
type MockRoundTx struct {
	mock.Mock
}

func (m *MockRoundTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRoundTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRoundTx) IncrementAttempt(ctx context.Context, userID, gameID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, gameID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoundTx) DueOverride(ctx context.Context, userID, gameID uuid.UUID, attempt int64) (*domain.Override, error) {
	args := m.Called(ctx, userID, gameID, attempt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Override), args.Error(1)
}

func (m *MockRoundTx) ConsumeOverride(ctx context.Context, overrideID uuid.UUID) error {
	args := m.Called(ctx, overrideID)
	return args.Error(0)
}

func (m *MockRoundTx) AdjustBalance(ctx context.Context, userID uuid.UUID, deltaCentavos int64) (int64, error) {
	args := m.Called(ctx, userID, deltaCentavos)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoundTx) InsertRound(ctx context.Context, round *domain.Round) error {
	args := m.Called(ctx, round)
	return args.Error(0)
}

func (m *MockRoundTx) InsertEntry(ctx context.Context, entry *domain.WalletEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
