package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind classifies a wallet ledger entry.
type EntryKind string

const (
	EntryKindBet        EntryKind = "bet"
	EntryKindWin        EntryKind = "win"
	EntryKindDeposit    EntryKind = "deposit"
	EntryKindWithdrawal EntryKind = "withdrawal"
)

// WalletEntry is one signed balance mutation. Entries for external deposits
// carry the payment gateway's transaction id; a unique index on that id is
// what makes repeated webhook delivery idempotent.
type WalletEntry struct {
	ID            int64     `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	DeltaCentavos int64     `json:"delta_centavos"`
	Kind          EntryKind `json:"kind"`
	ExternalTxID  string    `json:"external_tx_id,omitempty"`
	RoundID       *uuid.UUID `json:"round_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DepositResult reports the effect of an external deposit credit.
// Applied is false when the external transaction id was already processed.
type DepositResult struct {
	Applied         bool  `json:"applied"`
	BalanceCentavos int64 `json:"balance_centavos"`
}
