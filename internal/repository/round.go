package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/luckpix/raspadinha/internal/domain"
)

// Round defines the transactional boundary for round settlement
type Round interface {
	// BeginTx starts a transaction covering one round settlement
	BeginTx(ctx context.Context) (RoundTx, error)
}

// RoundTx groups every mutation of one round into a single transaction:
// attempt counting, override consumption, balance movement, and the audit
// record commit or roll back together, so no partial round is ever visible.
type RoundTx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// IncrementAttempt bumps the per-(user, game) attempt counter and
	// returns the new 1-based attempt number.
	IncrementAttempt(ctx context.Context, userID, gameID uuid.UUID) (int64, error)

	// DueOverride returns the armed override whose trigger round is at or
	// before the given attempt, locked for update, or nil when none is due.
	DueOverride(ctx context.Context, userID, gameID uuid.UUID, attempt int64) (*domain.Override, error)

	// ConsumeOverride marks an override as fired so it can never fire twice.
	ConsumeOverride(ctx context.Context, overrideID uuid.UUID) error

	// AdjustBalance applies a signed delta, failing with
	// domain.ErrInsufficientFunds when the result would be negative.
	// Returns the new balance.
	AdjustBalance(ctx context.Context, userID uuid.UUID, deltaCentavos int64) (int64, error)

	// InsertRound persists the round audit record.
	InsertRound(ctx context.Context, round *domain.Round) error

	// InsertEntry persists one wallet ledger entry for the round.
	InsertEntry(ctx context.Context, entry *domain.WalletEntry) error
}
