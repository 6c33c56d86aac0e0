package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game represents a configured scratch-card game with its prize catalog.
// The prize list order is significant: the outcome selector walks it in
// stored order when accumulating chances.
type Game struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	PriceCentavos int64        `json:"price_centavos"`
	CoverImage    string       `json:"cover_image,omitempty"`
	Prizes        []PrizeEntry `json:"prizes"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// PrizeEntry is one winnable prize within a game. Chance is expressed in
// percentage points (0-100); the uncovered remainder is the implicit loss
// probability. A zero value marks a cosmetic (non-monetary) prize.
type PrizeEntry struct {
	Name          string  `json:"name"`
	ValueCentavos int64   `json:"value_centavos"`
	Chance        float64 `json:"chance"`
	Image         string  `json:"image,omitempty"`
}

// ChanceSum returns the total configured chance across all prizes.
// Sums above 100 are a configuration problem: entries past the point where
// the cumulative sum reaches 100 can never be drawn.
func (g *Game) ChanceSum() float64 {
	var sum float64
	for _, p := range g.Prizes {
		sum += p.Chance
	}
	return sum
}
