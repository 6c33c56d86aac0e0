package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luckpix/raspadinha/internal/domain"
)

// WalletRepository implements the wallet repository for PostgreSQL.
// Every mutation goes through a conditional single-row UPDATE so that
// concurrent callers serialize on the wallet row lock; the balance check
// and the write are one statement, never a read-modify-write.
type WalletRepository struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetBalance returns the current wallet balance
func (r *WalletRepository) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx,
		`SELECT balance_centavos FROM user_wallets WHERE user_id = $1`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrWalletNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// CreditDeposit applies an external deposit exactly once per gateway
// transaction id. The ledger insert and the balance credit share one
// transaction; a replayed id hits the unique index and leaves the balance
// untouched.
func (r *WalletRepository) CreditDeposit(ctx context.Context, userID uuid.UUID, amountCentavos int64, externalTxID string) (int64, bool, error) {
	if amountCentavos <= 0 {
		return 0, false, domain.ErrInvalidAmount
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	entryQuery := `
		INSERT INTO wallet_entries (user_id, delta_centavos, kind, external_tx_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (external_tx_id) WHERE external_tx_id IS NOT NULL DO NOTHING
		RETURNING entry_id
	`
	var entryID int64
	err = tx.QueryRow(ctx, entryQuery, userID, amountCentavos, domain.EntryKindDeposit, externalTxID).Scan(&entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Duplicate webhook delivery: report the current balance untouched
			balance, berr := r.GetBalance(ctx, userID)
			if berr != nil && !errors.Is(berr, domain.ErrWalletNotFound) {
				return 0, false, berr
			}
			return balance, false, nil
		}
		return 0, false, fmt.Errorf("failed to insert deposit entry: %w", err)
	}

	creditQuery := `
		INSERT INTO user_wallets (user_id, balance_centavos, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET balance_centavos = user_wallets.balance_centavos + EXCLUDED.balance_centavos,
		    updated_at = NOW()
		RETURNING balance_centavos
	`
	var balance int64
	if err := tx.QueryRow(ctx, creditQuery, userID, amountCentavos).Scan(&balance); err != nil {
		return 0, false, fmt.Errorf("failed to credit deposit: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, fmt.Errorf("failed to commit deposit: %w", err)
	}
	return balance, true, nil
}

// DebitWithdrawal removes funds when the balance covers the amount
func (r *WalletRepository) DebitWithdrawal(ctx context.Context, userID uuid.UUID, amountCentavos int64) (int64, error) {
	if amountCentavos <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	debitQuery := `
		UPDATE user_wallets
		SET balance_centavos = balance_centavos - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance_centavos >= $2
		RETURNING balance_centavos
	`
	var balance int64
	err = tx.QueryRow(ctx, debitQuery, userID, amountCentavos).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing wallet from a short balance
			if _, berr := r.GetBalance(ctx, userID); errors.Is(berr, domain.ErrWalletNotFound) {
				return 0, domain.ErrWalletNotFound
			}
			return 0, domain.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("failed to debit withdrawal: %w", err)
	}

	entryQuery := `
		INSERT INTO wallet_entries (user_id, delta_centavos, kind)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, entryQuery, userID, -amountCentavos, domain.EntryKindWithdrawal); err != nil {
		return 0, fmt.Errorf("failed to insert withdrawal entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit withdrawal: %w", err)
	}
	return balance, nil
}
