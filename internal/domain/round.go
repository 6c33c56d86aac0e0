package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the win/loss decision for a round.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
)

// GridSize is the number of cells on a scratch card.
const GridSize = 9

// WinningCopies is how many matching cells reveal a win.
const WinningCopies = 3

// PrizeWon describes the prize attached to a winning round.
type PrizeWon struct {
	Name          string `json:"name"`
	ValueCentavos int64  `json:"value_centavos"`
}

// RoundResult is what the presentation layer receives for one settled round.
// Grid always holds exactly GridSize cell labels in display order.
type RoundResult struct {
	RoundID         uuid.UUID `json:"round_id"`
	Outcome         Outcome   `json:"outcome"`
	Prize           *PrizeWon `json:"prize,omitempty"`
	Grid            []string  `json:"grid"`
	BalanceCentavos int64     `json:"balance_centavos"`
	Message         string    `json:"message"`
}

// Round is the persisted audit record of one settled round. It is written
// in the same transaction as the balance mutations it describes.
type Round struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	GameID             uuid.UUID `json:"game_id"`
	Outcome            Outcome   `json:"outcome"`
	PrizeName          string    `json:"prize_name,omitempty"`
	PrizeValueCentavos int64     `json:"prize_value_centavos"`
	PriceCentavos      int64     `json:"price_centavos"`
	Grid               []string  `json:"grid"`
	CreatedAt          time.Time `json:"created_at"`
}
