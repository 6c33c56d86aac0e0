package round

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/luckpix/raspadinha/internal/domain"
	"github.com/luckpix/raspadinha/internal/logger"
	"github.com/luckpix/raspadinha/internal/metrics"
	"github.com/luckpix/raspadinha/internal/repository"
	"github.com/luckpix/raspadinha/internal/rules"
)

// Service defines the round orchestration interface
type Service interface {
	// PlayRound runs one paid round for (user, game): authorizes against
	// the balance, selects the outcome, builds the grid, and settles the
	// money movement atomically. A rejected round has zero balance effect.
	PlayRound(ctx context.Context, userID, gameID uuid.UUID) (*domain.RoundResult, error)
}

type service struct {
	rulesService rules.Service
	repo         repository.Round
	randFloat    func() float64 // uniform [0,1); injectable for testing
	randIntn     func(int) int  // uniform [0,n); injectable for testing
}

// NewService creates a new round service
func NewService(rulesService rules.Service, repo repository.Round) Service {
	return &service{
		rulesService: rulesService,
		repo:         repo,
		randFloat:    rand.Float64,
		randIntn:     rand.Intn,
	}
}

// PlayRound settles one round inside a single transaction. The attempt
// counter bump, override consumption, debit, credit, ledger entries, and
// the audit record commit together or not at all: the player either sees a
// fully settled round or an untouched balance, never a debit without a
// result.
func (s *service) PlayRound(ctx context.Context, userID, gameID uuid.UUID) (*domain.RoundResult, error) {
	log := logger.FromContext(ctx)

	game, err := s.rulesService.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) || errors.Is(err, domain.ErrInvalidGameConfig) {
			metrics.RoundsRejected.WithLabelValues("config").Inc()
		}
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin settlement: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	attempt, err := tx.IncrementAttempt(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	override, err := tx.DueOverride(ctx, userID, gameID, attempt)
	if err != nil {
		return nil, err
	}

	// Authorization and debit are one conditional statement; two concurrent
	// rounds can never both spend the same balance.
	balance, err := tx.AdjustBalance(ctx, userID, -game.PriceCentavos)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) || errors.Is(err, domain.ErrWalletNotFound) {
			metrics.RoundsRejected.WithLabelValues("insufficient_funds").Inc()
			return nil, domain.ErrInsufficientFunds
		}
		return nil, err
	}

	winner, overrideFired := s.selectWinner(ctx, game, override, attempt)

	grid, err := BuildGrid(game, winner, s.randIntn)
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}

	roundID := uuid.New()
	result := &domain.RoundResult{
		RoundID: roundID,
		Outcome: domain.OutcomeLoss,
		Grid:    grid,
	}
	record := &domain.Round{
		ID:            roundID,
		UserID:        userID,
		GameID:        gameID,
		Outcome:       domain.OutcomeLoss,
		PriceCentavos: game.PriceCentavos,
		Grid:          grid,
	}

	if winner != nil {
		result.Outcome = domain.OutcomeWin
		result.Prize = &domain.PrizeWon{Name: winner.Name, ValueCentavos: winner.ValueCentavos}
		record.Outcome = domain.OutcomeWin
		record.PrizeName = winner.Name
		record.PrizeValueCentavos = winner.ValueCentavos

		if winner.ValueCentavos > 0 {
			balance, err = tx.AdjustBalance(ctx, userID, winner.ValueCentavos)
			if err != nil {
				return nil, fmt.Errorf("failed to credit prize: %w", err)
			}
			winEntry := &domain.WalletEntry{
				UserID:        userID,
				DeltaCentavos: winner.ValueCentavos,
				Kind:          domain.EntryKindWin,
				RoundID:       &roundID,
			}
			if err := tx.InsertEntry(ctx, winEntry); err != nil {
				return nil, err
			}
		}
	}

	betEntry := &domain.WalletEntry{
		UserID:        userID,
		DeltaCentavos: -game.PriceCentavos,
		Kind:          domain.EntryKindBet,
		RoundID:       &roundID,
	}
	if err := tx.InsertEntry(ctx, betEntry); err != nil {
		return nil, err
	}

	if err := tx.InsertRound(ctx, record); err != nil {
		return nil, err
	}

	if overrideFired {
		if err := tx.ConsumeOverride(ctx, override.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		// The rollback leaves zero balance effect; the player retries a
		// round that never happened, not one that half-settled.
		metrics.SettlementFailures.Inc()
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}

	result.BalanceCentavos = balance
	result.Message = formatMessage(result, game.PriceCentavos)

	metrics.RoundsPlayed.WithLabelValues(game.Name, string(result.Outcome)).Inc()
	metrics.WagerCentavos.Add(float64(game.PriceCentavos))
	if result.Prize != nil {
		metrics.PayoutCentavos.Add(float64(result.Prize.ValueCentavos))
	}
	if overrideFired {
		metrics.OverridesFired.Inc()
	}

	log.Info("Round settled",
		"round_id", roundID,
		"user_id", userID,
		"game_id", gameID,
		"attempt", attempt,
		"outcome", result.Outcome,
		"override_fired", overrideFired,
		"balance", balance)

	return result, nil
}

// selectWinner resolves the round outcome: a due override wins over the
// random draw, and a misconfigured override degrades to the random draw.
// Returns the winning prize (nil for a loss) and whether the override is
// consumed by this round. A misconfigured override is still consumed so it
// cannot wedge every subsequent round for the pair.
func (s *service) selectWinner(ctx context.Context, game *domain.Game, override *domain.Override, attempt int64) (*domain.PrizeEntry, bool) {
	if override != nil {
		idx, win, err := SelectForcedOutcome(game, override)
		if err == nil {
			if win {
				return &game.Prizes[idx], true
			}
			return nil, true
		}
		logger.FromContext(ctx).Warn("Ignoring misconfigured override",
			"override_id", override.ID,
			"prize_index", override.PrizeIndex,
			"attempt", attempt,
			"error", err)
	}

	draw := s.randFloat() * 100
	if idx, win := SelectOutcome(game, draw); win {
		return &game.Prizes[idx], override != nil
	}
	return nil, override != nil
}
