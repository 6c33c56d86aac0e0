package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChanceSum(t *testing.T) {
	game := &Game{
		Prizes: []PrizeEntry{
			{Name: "A", Chance: 1.5},
			{Name: "B", Chance: 8.5},
			{Name: "C", Chance: 20},
		},
	}
	assert.InDelta(t, 30, game.ChanceSum(), 1e-9)

	empty := &Game{}
	assert.Zero(t, empty.ChanceSum())
}

func TestOverrideForcesLoss(t *testing.T) {
	assert.True(t, (&Override{PrizeIndex: ForcedLossIndex}).ForcesLoss())
	assert.False(t, (&Override{PrizeIndex: 0}).ForcesLoss())
	assert.False(t, (&Override{PrizeIndex: 2}).ForcesLoss())
}
