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

// RulesRepository implements the rules repository for PostgreSQL
type RulesRepository struct {
	db *pgxpool.Pool
}

// NewRulesRepository creates a new RulesRepository
func NewRulesRepository(db *pgxpool.Pool) *RulesRepository {
	return &RulesRepository{db: db}
}

// GetGame retrieves a game definition with its prize list in stored order
func (r *RulesRepository) GetGame(ctx context.Context, gameID uuid.UUID) (*domain.Game, error) {
	query := `
		SELECT game_id, name, price_centavos, COALESCE(cover_image, ''), created_at, updated_at
		FROM games
		WHERE game_id = $1
	`
	var game domain.Game
	err := r.db.QueryRow(ctx, query, gameID).Scan(
		&game.ID, &game.Name, &game.PriceCentavos, &game.CoverImage,
		&game.CreatedAt, &game.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	prizes, err := r.getPrizes(ctx, gameID)
	if err != nil {
		return nil, err
	}
	game.Prizes = prizes

	return &game, nil
}

func (r *RulesRepository) getPrizes(ctx context.Context, gameID uuid.UUID) ([]domain.PrizeEntry, error) {
	query := `
		SELECT name, value_centavos, chance, COALESCE(image, '')
		FROM game_prizes
		WHERE game_id = $1
		ORDER BY position
	`
	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prizes: %w", err)
	}
	defer rows.Close()

	var prizes []domain.PrizeEntry
	for rows.Next() {
		var p domain.PrizeEntry
		if err := rows.Scan(&p.Name, &p.ValueCentavos, &p.Chance, &p.Image); err != nil {
			return nil, fmt.Errorf("failed to scan prize: %w", err)
		}
		prizes = append(prizes, p)
	}
	return prizes, rows.Err()
}

// SaveGame upserts a game and replaces its prize list in one transaction
func (r *RulesRepository) SaveGame(ctx context.Context, game *domain.Game) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}

	query := `
		INSERT INTO games (game_id, name, price_centavos, cover_image, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NOW(), NOW())
		ON CONFLICT (game_id) DO UPDATE
		SET name = EXCLUDED.name,
		    price_centavos = EXCLUDED.price_centavos,
		    cover_image = EXCLUDED.cover_image,
		    updated_at = NOW()
	`
	if _, err := tx.Exec(ctx, query, game.ID, game.Name, game.PriceCentavos, game.CoverImage); err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM game_prizes WHERE game_id = $1`, game.ID); err != nil {
		return fmt.Errorf("failed to clear prizes: %w", err)
	}

	for i, p := range game.Prizes {
		prizeQuery := `
			INSERT INTO game_prizes (game_id, position, name, value_centavos, chance, image)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		`
		if _, err := tx.Exec(ctx, prizeQuery, game.ID, i, p.Name, p.ValueCentavos, p.Chance, p.Image); err != nil {
			return fmt.Errorf("failed to insert prize %q: %w", p.Name, err)
		}
	}

	return tx.Commit(ctx)
}

// ListGames returns all game definitions without prize lists
func (r *RulesRepository) ListGames(ctx context.Context) ([]domain.Game, error) {
	query := `
		SELECT game_id, name, price_centavos, COALESCE(cover_image, ''), created_at, updated_at
		FROM games
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.PriceCentavos, &g.CoverImage, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// CreateOverride registers a rigged outcome
func (r *RulesRepository) CreateOverride(ctx context.Context, override *domain.Override) error {
	if override.ID == uuid.Nil {
		override.ID = uuid.New()
	}
	query := `
		INSERT INTO rigged_outcomes (override_id, user_id, game_id, prize_index, trigger_round, active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		override.ID, override.UserID, override.GameID, override.PrizeIndex, override.TriggerRound)
	if err != nil {
		return fmt.Errorf("failed to create override: %w", err)
	}
	override.Active = true
	return nil
}

// DeactivateOverride disarms an override without firing it
func (r *RulesRepository) DeactivateOverride(ctx context.Context, overrideID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rigged_outcomes SET active = FALSE WHERE override_id = $1 AND active`, overrideID)
	if err != nil {
		return fmt.Errorf("failed to deactivate override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOverrideNotFound
	}
	return nil
}
