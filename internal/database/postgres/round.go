package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luckpix/raspadinha/internal/domain"
	"github.com/luckpix/raspadinha/internal/repository"
)

// RoundRepository implements the round settlement repository for PostgreSQL
type RoundRepository struct {
	db *pgxpool.Pool
}

// NewRoundRepository creates a new RoundRepository
func NewRoundRepository(db *pgxpool.Pool) *RoundRepository {
	return &RoundRepository{db: db}
}

// RoundTx implements repository.RoundTx
type RoundTx struct {
	tx pgx.Tx
}

// BeginTx starts a new settlement transaction
func (r *RoundRepository) BeginTx(ctx context.Context) (repository.RoundTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &RoundTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *RoundTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *RoundTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// IncrementAttempt bumps the per-(user, game) attempt counter atomically.
// The upsert takes a row lock, so two concurrent rounds get distinct
// attempt numbers rather than both reading N.
func (t *RoundTx) IncrementAttempt(ctx context.Context, userID, gameID uuid.UUID) (int64, error) {
	query := `
		INSERT INTO game_attempts (user_id, game_id, attempts)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, game_id) DO UPDATE
		SET attempts = game_attempts.attempts + 1
		RETURNING attempts
	`
	var attempts int64
	if err := t.tx.QueryRow(ctx, query, userID, gameID).Scan(&attempts); err != nil {
		return 0, fmt.Errorf("failed to increment attempt counter: %w", err)
	}
	return attempts, nil
}

// DueOverride returns the armed override due at or before the given
// attempt, locked for update. Trigger rounds that were skipped by
// concurrent rounds stay due until they fire.
func (t *RoundTx) DueOverride(ctx context.Context, userID, gameID uuid.UUID, attempt int64) (*domain.Override, error) {
	query := `
		SELECT override_id, user_id, game_id, prize_index, trigger_round, active, created_at, fired_at
		FROM rigged_outcomes
		WHERE user_id = $1 AND game_id = $2 AND active AND trigger_round <= $3
		ORDER BY trigger_round
		LIMIT 1
		FOR UPDATE
	`
	var o domain.Override
	err := t.tx.QueryRow(ctx, query, userID, gameID, attempt).Scan(
		&o.ID, &o.UserID, &o.GameID, &o.PrizeIndex, &o.TriggerRound, &o.Active, &o.CreatedAt, &o.FiredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get due override: %w", err)
	}
	return &o, nil
}

// ConsumeOverride marks an override as fired. The conditional update means
// a retried read inside another transaction can never fire it twice.
func (t *RoundTx) ConsumeOverride(ctx context.Context, overrideID uuid.UUID) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE rigged_outcomes SET active = FALSE, fired_at = NOW() WHERE override_id = $1 AND active`,
		overrideID)
	if err != nil {
		return fmt.Errorf("failed to consume override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOverrideNotFound
	}
	return nil
}

// AdjustBalance applies a signed delta in one conditional statement
func (t *RoundTx) AdjustBalance(ctx context.Context, userID uuid.UUID, deltaCentavos int64) (int64, error) {
	query := `
		UPDATE user_wallets
		SET balance_centavos = balance_centavos + $2, updated_at = NOW()
		WHERE user_id = $1 AND balance_centavos + $2 >= 0
		RETURNING balance_centavos
	`
	var balance int64
	err := t.tx.QueryRow(ctx, query, userID, deltaCentavos).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if cerr := t.tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM user_wallets WHERE user_id = $1)`, userID).Scan(&exists); cerr != nil {
				return 0, fmt.Errorf("failed to check wallet: %w", cerr)
			}
			if !exists {
				return 0, domain.ErrWalletNotFound
			}
			return 0, domain.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("failed to adjust balance: %w", err)
	}
	return balance, nil
}

// InsertRound persists the round audit record
func (t *RoundTx) InsertRound(ctx context.Context, round *domain.Round) error {
	gridJSON, err := json.Marshal(round.Grid)
	if err != nil {
		return fmt.Errorf("failed to marshal grid: %w", err)
	}

	query := `
		INSERT INTO rounds (round_id, user_id, game_id, outcome, prize_name, prize_value_centavos, price_centavos, grid, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NOW())
	`
	_, err = t.tx.Exec(ctx, query,
		round.ID, round.UserID, round.GameID, string(round.Outcome),
		round.PrizeName, round.PrizeValueCentavos, round.PriceCentavos, gridJSON)
	if err != nil {
		return fmt.Errorf("failed to insert round: %w", err)
	}
	return nil
}

// InsertEntry persists one wallet ledger entry
func (t *RoundTx) InsertEntry(ctx context.Context, entry *domain.WalletEntry) error {
	query := `
		INSERT INTO wallet_entries (user_id, delta_centavos, kind, round_id)
		VALUES ($1, $2, $3, $4)
	`
	_, err := t.tx.Exec(ctx, query, entry.UserID, entry.DeltaCentavos, entry.Kind, entry.RoundID)
	if err != nil {
		return fmt.Errorf("failed to insert wallet entry: %w", err)
	}
	return nil
}
