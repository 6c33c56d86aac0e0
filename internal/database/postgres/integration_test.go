package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/luckpix/raspadinha/internal/database"
	"github.com/luckpix/raspadinha/internal/domain"
	"github.com/luckpix/raspadinha/internal/repository"
)

func TestRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *tcpostgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = tcpostgres.Run(ctx,
			"postgres:15-alpine",
			tcpostgres.WithDatabase("testdb"),
			tcpostgres.WithUsername("testuser"),
			tcpostgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if pgContainer == nil {
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := database.Migrate(connStr); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	pool, err := database.NewPool(connStr, database.DefaultPoolConfig())
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	rulesRepo := NewRulesRepository(pool)
	walletRepo := NewWalletRepository(pool)
	roundRepo := NewRoundRepository(pool)

	game := &domain.Game{
		ID:            uuid.New(),
		Name:          "Raspa da Sorte",
		PriceCentavos: 500,
		Prizes: []domain.PrizeEntry{
			{Name: "R$ 100", ValueCentavos: 10000, Chance: 1},
			{Name: "R$ 10", ValueCentavos: 1000, Chance: 9},
		},
	}

	t.Run("Game round trip", func(t *testing.T) {
		require.NoError(t, rulesRepo.SaveGame(ctx, game))

		got, err := rulesRepo.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game.Name, got.Name)
		require.Len(t, got.Prizes, 2)
		assert.Equal(t, "R$ 100", got.Prizes[0].Name, "prize order must survive storage")

		games, err := rulesRepo.ListGames(ctx)
		require.NoError(t, err)
		assert.Len(t, games, 1)
	})

	t.Run("Game not found", func(t *testing.T) {
		_, err := rulesRepo.GetGame(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrGameNotFound)
	})

	t.Run("Prize list replaced on save", func(t *testing.T) {
		updated := *game
		updated.Prizes = []domain.PrizeEntry{
			{Name: "R$ 50", ValueCentavos: 5000, Chance: 2},
		}
		require.NoError(t, rulesRepo.SaveGame(ctx, &updated))

		got, err := rulesRepo.GetGame(ctx, game.ID)
		require.NoError(t, err)
		require.Len(t, got.Prizes, 1)
		assert.Equal(t, "R$ 50", got.Prizes[0].Name)

		// Restore the original catalog for the tests below
		require.NoError(t, rulesRepo.SaveGame(ctx, game))
	})

	t.Run("Deposit idempotency", func(t *testing.T) {
		userID := uuid.New()

		balance, applied, err := walletRepo.CreditDeposit(ctx, userID, 10000, "pix-tx-1")
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, int64(10000), balance)

		// Redelivery of the same gateway tx credits nothing
		balance, applied, err = walletRepo.CreditDeposit(ctx, userID, 10000, "pix-tx-1")
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, int64(10000), balance)

		// A new tx id credits normally
		balance, applied, err = walletRepo.CreditDeposit(ctx, userID, 2500, "pix-tx-2")
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, int64(12500), balance)
	})

	t.Run("Withdrawal guards the balance", func(t *testing.T) {
		userID := uuid.New()
		_, _, err := walletRepo.CreditDeposit(ctx, userID, 1000, "pix-tx-3")
		require.NoError(t, err)

		_, err = walletRepo.DebitWithdrawal(ctx, userID, 5000)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		balance, err := walletRepo.DebitWithdrawal(ctx, userID, 400)
		require.NoError(t, err)
		assert.Equal(t, int64(600), balance)
	})

	t.Run("Withdrawal from unknown wallet", func(t *testing.T) {
		_, err := walletRepo.DebitWithdrawal(ctx, uuid.New(), 100)
		assert.ErrorIs(t, err, domain.ErrWalletNotFound)
	})

	t.Run("Round settlement transaction", func(t *testing.T) {
		userID := uuid.New()
		_, _, err := walletRepo.CreditDeposit(ctx, userID, 5000, "pix-tx-4")
		require.NoError(t, err)

		tx, err := roundRepo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		attempt, err := tx.IncrementAttempt(ctx, userID, game.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), attempt)

		override, err := tx.DueOverride(ctx, userID, game.ID, attempt)
		require.NoError(t, err)
		assert.Nil(t, override)

		balance, err := tx.AdjustBalance(ctx, userID, -game.PriceCentavos)
		require.NoError(t, err)
		assert.Equal(t, int64(4500), balance)

		roundID := uuid.New()
		require.NoError(t, tx.InsertEntry(ctx, &domain.WalletEntry{
			UserID:        userID,
			DeltaCentavos: -game.PriceCentavos,
			Kind:          domain.EntryKindBet,
			RoundID:       &roundID,
		}))
		require.NoError(t, tx.InsertRound(ctx, &domain.Round{
			ID:            roundID,
			UserID:        userID,
			GameID:        game.ID,
			Outcome:       domain.OutcomeLoss,
			PriceCentavos: game.PriceCentavos,
			Grid:          []string{"a", "a", "b", "b", "c", "c", "d", "d", "e"},
		}))
		require.NoError(t, tx.Commit(ctx))

		got, err := walletRepo.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(4500), got)
	})

	t.Run("Rollback leaves no trace", func(t *testing.T) {
		userID := uuid.New()
		_, _, err := walletRepo.CreditDeposit(ctx, userID, 5000, "pix-tx-5")
		require.NoError(t, err)

		tx, err := roundRepo.BeginTx(ctx)
		require.NoError(t, err)

		_, err = tx.IncrementAttempt(ctx, userID, game.ID)
		require.NoError(t, err)
		_, err = tx.AdjustBalance(ctx, userID, -game.PriceCentavos)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback(ctx))

		balance, err := walletRepo.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), balance, "rolled back debit must not stick")

		// The attempt bump rolled back too
		tx2, err := roundRepo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx2)
		attempt, err := tx2.IncrementAttempt(ctx, userID, game.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), attempt)
		require.NoError(t, tx2.Rollback(ctx))
	})

	t.Run("Override lifecycle", func(t *testing.T) {
		userID := uuid.New()
		override := &domain.Override{
			ID:           uuid.New(),
			UserID:       userID,
			GameID:       game.ID,
			PrizeIndex:   0,
			TriggerRound: 2,
			Active:       true,
		}
		require.NoError(t, rulesRepo.CreateOverride(ctx, override))

		tx, err := roundRepo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		// Not due on attempt 1
		got, err := tx.DueOverride(ctx, userID, game.ID, 1)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Due on attempt 2, and a skipped trigger stays due later
		got, err = tx.DueOverride(ctx, userID, game.ID, 3)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, override.ID, got.ID)

		require.NoError(t, tx.ConsumeOverride(ctx, got.ID))

		// Consumed overrides never fire again
		got, err = tx.DueOverride(ctx, userID, game.ID, 10)
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, tx.Commit(ctx))
	})

	t.Run("Deactivate override", func(t *testing.T) {
		override := &domain.Override{
			ID:           uuid.New(),
			UserID:       uuid.New(),
			GameID:       game.ID,
			PrizeIndex:   domain.ForcedLossIndex,
			TriggerRound: 1,
			Active:       true,
		}
		require.NoError(t, rulesRepo.CreateOverride(ctx, override))
		require.NoError(t, rulesRepo.DeactivateOverride(ctx, override.ID))
		assert.ErrorIs(t, rulesRepo.DeactivateOverride(ctx, override.ID), domain.ErrOverrideNotFound)
	})

	t.Run("Concurrent debits never overspend", func(t *testing.T) {
		userID := uuid.New()
		_, _, err := walletRepo.CreditDeposit(ctx, userID, 1000, "pix-tx-6")
		require.NoError(t, err)

		// 10 workers race to debit 300 from a 1000 balance; only 3 can win
		const workers = 10
		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tx, err := roundRepo.BeginTx(ctx)
				if err != nil {
					return
				}
				defer repository.SafeRollback(ctx, tx)

				if _, err := tx.AdjustBalance(ctx, userID, -300); err != nil {
					return
				}
				if err := tx.Commit(ctx); err != nil {
					return
				}
				mu.Lock()
				succeeded++
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 3, succeeded)

		balance, err := walletRepo.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})
}
