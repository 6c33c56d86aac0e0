package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/luckpix/raspadinha/internal/domain"
)

// MockRoundService is a mock implementation of the round.Service interface
type MockRoundService struct {
	mock.Mock
}

func (m *MockRoundService) PlayRound(ctx context.Context, userID, gameID uuid.UUID) (*domain.RoundResult, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundResult), args.Error(1)
}

// MockWalletService is a mock implementation of the wallet.Service interface
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletService) CreditDeposit(ctx context.Context, userID uuid.UUID, amountCentavos int64, externalTxID string) (*domain.DepositResult, error) {
	args := m.Called(ctx, userID, amountCentavos, externalTxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepositResult), args.Error(1)
}

func (m *MockWalletService) DebitWithdrawal(ctx context.Context, userID uuid.UUID, amountCentavos int64) (int64, error) {
	args := m.Called(ctx, userID, amountCentavos)
	return args.Get(0).(int64), args.Error(1)
}

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
