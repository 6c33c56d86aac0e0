package round

import (
	"fmt"

	"github.com/luckpix/raspadinha/internal/domain"
)

// SelectOutcome picks the outcome for one paid round from a uniform draw in
// [0, 100). It walks the prize list in stored order accumulating chances;
// the first prize whose cumulative sum covers the draw wins. A draw landing
// in the uncovered remainder, or an empty prize list, is a loss.
//
// When configured chances sum past 100, entries beyond the point where the
// cumulative sum reaches 100 are unreachable: the draw never exceeds it.
// That is a configuration warning surfaced by the rule store, not a runtime
// error here.
//
// Pure function of (game, draw) so tests can pin the draw.
func SelectOutcome(game *domain.Game, draw float64) (prizeIndex int, win bool) {
	var cumulative float64
	for i, p := range game.Prizes {
		cumulative += p.Chance
		if draw <= cumulative {
			return i, true
		}
	}
	return 0, false
}

// SelectForcedOutcome resolves an operator override into an outcome,
// bypassing the random draw entirely. A prize index outside the game's
// catalog returns domain.ErrOverrideMisconfigured; the caller falls back to
// normal random selection.
func SelectForcedOutcome(game *domain.Game, override *domain.Override) (prizeIndex int, win bool, err error) {
	if override.ForcesLoss() {
		return 0, false, nil
	}
	if override.PrizeIndex < 0 || override.PrizeIndex >= len(game.Prizes) {
		return 0, false, fmt.Errorf("%w: prize index %d out of range for %d prizes",
			domain.ErrOverrideMisconfigured, override.PrizeIndex, len(game.Prizes))
	}
	return override.PrizeIndex, true, nil
}
