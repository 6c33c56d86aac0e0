package repository

import (
	"context"

	"github.com/google/uuid"
)

// Wallet defines the interface for balance persistence outside of round
// settlement. All mutations are single atomic statements against the
// wallet row so concurrent callers serialize at the row lock.
type Wallet interface {
	// GetBalance returns the current balance or domain.ErrWalletNotFound.
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)

	// CreditDeposit applies an external deposit keyed by the gateway
	// transaction id. Returns the resulting balance and whether the credit
	// was applied; a replayed externalTxID is a no-op with applied=false.
	CreditDeposit(ctx context.Context, userID uuid.UUID, amountCentavos int64, externalTxID string) (int64, bool, error)

	// DebitWithdrawal removes funds, failing with domain.ErrInsufficientFunds
	// when the balance would go negative.
	DebitWithdrawal(ctx context.Context, userID uuid.UUID, amountCentavos int64) (int64, error)
}
