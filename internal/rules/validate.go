package rules

import (
	"fmt"

	"github.com/luckpix/raspadinha/internal/domain"
)

// ValidateGame checks a game definition at the rule store boundary.
// An empty prize list is legal (the game always loses); a chance sum above
// 100 is a warning handled by the caller, not a validation failure, because
// the selector clamps the draw range.
func ValidateGame(game *domain.Game) error {
	if game == nil {
		return fmt.Errorf("%w: game is nil", domain.ErrInvalidGameConfig)
	}
	if game.Name == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidGameConfig)
	}
	if game.PriceCentavos <= 0 {
		return fmt.Errorf("%w: price must be positive, got %d", domain.ErrInvalidGameConfig, game.PriceCentavos)
	}

	seen := make(map[string]struct{}, len(game.Prizes))
	for i, p := range game.Prizes {
		if p.Name == "" {
			return fmt.Errorf("%w: prize %d has empty name", domain.ErrInvalidGameConfig, i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate prize name %q", domain.ErrInvalidGameConfig, p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.ValueCentavos < 0 {
			return fmt.Errorf("%w: prize %q has negative value", domain.ErrInvalidGameConfig, p.Name)
		}
		if p.Chance < 0 || p.Chance > 100 {
			return fmt.Errorf("%w: prize %q chance %.2f outside [0,100]", domain.ErrInvalidGameConfig, p.Name, p.Chance)
		}
	}
	return nil
}
