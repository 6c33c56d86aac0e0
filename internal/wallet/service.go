package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/luckpix/raspadinha/internal/domain"
	"github.com/luckpix/raspadinha/internal/logger"
	"github.com/luckpix/raspadinha/internal/metrics"
	"github.com/luckpix/raspadinha/internal/repository"
)

// Deposit status label values
const (
	DepositStatusApplied   = "applied"
	DepositStatusDuplicate = "duplicate"
)

// Service defines the wallet operations interface
type Service interface {
	// GetBalance returns the user's current balance in centavos.
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)

	// CreditDeposit applies an external deposit identified by the payment
	// gateway's transaction id. Redelivery of the same id credits nothing.
	CreditDeposit(ctx context.Context, userID uuid.UUID, amountCentavos int64, externalTxID string) (*domain.DepositResult, error)

	// DebitWithdrawal removes funds for an external withdrawal.
	DebitWithdrawal(ctx context.Context, userID uuid.UUID, amountCentavos int64) (int64, error)
}

type service struct {
	repo repository.Wallet
}

// NewService creates a new wallet service
func NewService(repo repository.Wallet) Service {
	return &service{repo: repo}
}

func (s *service) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetBalance(ctx, userID)
}

func (s *service) CreditDeposit(ctx context.Context, userID uuid.UUID, amountCentavos int64, externalTxID string) (*domain.DepositResult, error) {
	if amountCentavos <= 0 {
		return nil, fmt.Errorf("%w: deposit amount must be positive", domain.ErrInvalidAmount)
	}
	if strings.TrimSpace(externalTxID) == "" {
		return nil, fmt.Errorf("%w: external transaction id is required", domain.ErrInvalidInput)
	}

	balance, applied, err := s.repo.CreditDeposit(ctx, userID, amountCentavos, externalTxID)
	if err != nil {
		return nil, err
	}

	if applied {
		metrics.Deposits.WithLabelValues(DepositStatusApplied).Inc()
	} else {
		metrics.Deposits.WithLabelValues(DepositStatusDuplicate).Inc()
		logger.FromContext(ctx).Info("Duplicate deposit ignored",
			"user_id", userID,
			"external_tx_id", externalTxID)
	}

	return &domain.DepositResult{Applied: applied, BalanceCentavos: balance}, nil
}

func (s *service) DebitWithdrawal(ctx context.Context, userID uuid.UUID, amountCentavos int64) (int64, error) {
	if amountCentavos <= 0 {
		return 0, fmt.Errorf("%w: withdrawal amount must be positive", domain.ErrInvalidAmount)
	}

	balance, err := s.repo.DebitWithdrawal(ctx, userID, amountCentavos)
	if err != nil {
		return 0, err
	}

	metrics.Withdrawals.Inc()
	return balance, nil
}
