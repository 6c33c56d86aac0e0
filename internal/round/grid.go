package round

import (
	"fmt"

	"github.com/luckpix/raspadinha/internal/domain"
)

// BuildGrid expands an outcome into the 9-cell display grid. For a win the
// winning prize appears exactly three times and every other label at most
// twice, so the winning triple is unique on the board. For a loss every
// label is capped at two occurrences, so no accidental triple can appear.
// The final order is a uniform permutation of the constructed multiset.
//
// winner is nil for a losing round. randIntn is injected so tests can pin
// the permutation; it must return a uniform value in [0, n).
func BuildGrid(game *domain.Game, winner *domain.PrizeEntry, randIntn func(int) int) ([]string, error) {
	pool := fillerPool(game, winner)

	cells := make([]string, 0, domain.GridSize)
	counts := make(map[string]int, len(pool))

	if winner != nil {
		for i := 0; i < domain.WinningCopies; i++ {
			cells = append(cells, winner.Name)
		}
		counts[winner.Name] = domain.WinningCopies
	}

	for len(cells) < domain.GridSize {
		label, err := drawFiller(pool, counts, randIntn)
		if err != nil {
			return nil, err
		}
		cells = append(cells, label)
		counts[label]++
	}

	shuffle(cells, randIntn)
	return cells, nil
}

// fillerPool lists every label usable as padding: all prize names except
// the winner, plus the generic filler symbols. Prize names stay in the loss
// pool so a losing card still teases real prizes without completing them.
func fillerPool(game *domain.Game, winner *domain.PrizeEntry) []string {
	pool := make([]string, 0, len(game.Prizes)+len(GenericFillers))
	for _, p := range game.Prizes {
		if winner != nil && p.Name == winner.Name {
			continue
		}
		pool = append(pool, p.Name)
	}
	return append(pool, GenericFillers...)
}

// drawFiller picks a label under the occurrence cap: bounded random
// attempts first, then a deterministic scan so construction can never spin
// forever on a small pool.
func drawFiller(pool []string, counts map[string]int, randIntn func(int) int) (string, error) {
	for attempt := 0; attempt < maxDrawRetries; attempt++ {
		label := pool[randIntn(len(pool))]
		if counts[label] < MaxFillerCopies {
			return label, nil
		}
	}
	for _, label := range pool {
		if counts[label] < MaxFillerCopies {
			return label, nil
		}
	}
	return "", fmt.Errorf("filler pool exhausted: %d labels all at cap", len(pool))
}

// shuffle applies a Fisher-Yates permutation in place
func shuffle(cells []string, randIntn func(int) int) {
	for i := len(cells) - 1; i > 0; i-- {
		j := randIntn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}
