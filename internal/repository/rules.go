package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/luckpix/raspadinha/internal/domain"
)

// Rules defines the interface for game and override persistence
type Rules interface {
	// GetGame returns the game definition with its prize list in stored
	// order, or domain.ErrGameNotFound.
	GetGame(ctx context.Context, gameID uuid.UUID) (*domain.Game, error)

	// SaveGame upserts a game definition and replaces its prize list.
	SaveGame(ctx context.Context, game *domain.Game) error

	ListGames(ctx context.Context) ([]domain.Game, error)

	// CreateOverride registers a rigged outcome for a (user, game) pair.
	CreateOverride(ctx context.Context, override *domain.Override) error

	// DeactivateOverride disarms an override without firing it.
	DeactivateOverride(ctx context.Context, overrideID uuid.UUID) error
}
