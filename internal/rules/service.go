package rules

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/luckpix/raspadinha/internal/domain"
	"github.com/luckpix/raspadinha/internal/logger"
	"github.com/luckpix/raspadinha/internal/repository"
)

// GameCacheSize bounds the in-memory game definition cache.
const GameCacheSize = 128

// Service defines the rule store interface
type Service interface {
	// GetGame returns a validated game definition, served from cache when
	// possible. Malformed configurations never reach the selector.
	GetGame(ctx context.Context, gameID uuid.UUID) (*domain.Game, error)

	ListGames(ctx context.Context) ([]domain.Game, error)

	// SaveGame validates and persists a game definition, invalidating the
	// cache entry.
	SaveGame(ctx context.Context, game *domain.Game) error

	// CreateOverride validates and registers a rigged outcome for a
	// (user, game) pair.
	CreateOverride(ctx context.Context, override *domain.Override) error

	// CancelOverride disarms an override without firing it.
	CancelOverride(ctx context.Context, overrideID uuid.UUID) error
}

type service struct {
	repo  repository.Rules
	cache *lru.Cache[uuid.UUID, *domain.Game]
}

// NewService creates a new rules service
func NewService(repo repository.Rules) (Service, error) {
	cache, err := lru.New[uuid.UUID, *domain.Game](GameCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create game cache: %w", err)
	}
	return &service{repo: repo, cache: cache}, nil
}

// GetGame returns a validated game definition
func (s *service) GetGame(ctx context.Context, gameID uuid.UUID) (*domain.Game, error) {
	if game, ok := s.cache.Get(gameID); ok {
		return game, nil
	}

	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := ValidateGame(game); err != nil {
		logger.FromContext(ctx).Error("Rejecting malformed game configuration",
			"game_id", gameID, "error", err)
		return nil, err
	}

	if sum := game.ChanceSum(); sum > 100 {
		// Entries past the 100% cumulative mark can never be drawn; this is
		// an operator problem, not a player-facing failure.
		logger.FromContext(ctx).Warn("Game chance sum exceeds 100",
			"game_id", gameID, "chance_sum", sum)
	}

	s.cache.Add(gameID, game)
	return game, nil
}

// ListGames returns all configured games
func (s *service) ListGames(ctx context.Context) ([]domain.Game, error) {
	return s.repo.ListGames(ctx)
}

// SaveGame validates and persists a game definition
func (s *service) SaveGame(ctx context.Context, game *domain.Game) error {
	if err := ValidateGame(game); err != nil {
		return err
	}
	if sum := game.ChanceSum(); sum > 100 {
		logger.FromContext(ctx).Warn("Saving game with chance sum above 100",
			"game", game.Name, "chance_sum", sum)
	}
	if err := s.repo.SaveGame(ctx, game); err != nil {
		return err
	}
	s.cache.Remove(game.ID)
	return nil
}

// CreateOverride validates and registers a rigged outcome
func (s *service) CreateOverride(ctx context.Context, override *domain.Override) error {
	if override.TriggerRound < 1 {
		return fmt.Errorf("%w: trigger round must be at least 1", domain.ErrInvalidInput)
	}

	game, err := s.GetGame(ctx, override.GameID)
	if err != nil {
		return err
	}
	if override.PrizeIndex != domain.ForcedLossIndex &&
		(override.PrizeIndex < 0 || override.PrizeIndex >= len(game.Prizes)) {
		return fmt.Errorf("%w: prize index %d out of range for %d prizes",
			domain.ErrInvalidInput, override.PrizeIndex, len(game.Prizes))
	}

	return s.repo.CreateOverride(ctx, override)
}

// CancelOverride disarms an override without firing it
func (s *service) CancelOverride(ctx context.Context, overrideID uuid.UUID) error {
	return s.repo.DeactivateOverride(ctx, overrideID)
}
