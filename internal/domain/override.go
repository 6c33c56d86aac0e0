package domain

import (
	"time"

	"github.com/google/uuid"
)

// ForcedLossIndex is the sentinel prize index for an override that forces a
// losing round instead of a specific prize.
const ForcedLossIndex = -1

// Override is an operator-configured forced outcome for a specific user,
// game, and attempt number. It fires at most once: consuming it flips
// Active to false in the same transaction that settles the round.
//
// A trigger round that was skipped (e.g. two concurrent rounds both bumped
// the attempt counter) still fires on the next possible attempt; overrides
// are never silently dropped.
type Override struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	GameID       uuid.UUID  `json:"game_id"`
	PrizeIndex   int        `json:"prize_index"`
	TriggerRound int64      `json:"trigger_round"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	FiredAt      *time.Time `json:"fired_at,omitempty"`
}

// ForcesLoss reports whether this override forces a losing outcome.
func (o *Override) ForcesLoss() bool {
	return o.PrizeIndex == ForcedLossIndex
}
