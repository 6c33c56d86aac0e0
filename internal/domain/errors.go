package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInsufficientFunds     = "insufficient funds"
	ErrMsgGameNotFound          = "game not found"
	ErrMsgInvalidGameConfig     = "invalid game configuration"
	ErrMsgOverrideMisconfigured = "override misconfigured"
	ErrMsgOverrideNotFound      = "override not found"
	ErrMsgWalletNotFound        = "wallet not found"
	ErrMsgInvalidInput          = "invalid input"
	ErrMsgInvalidAmount         = "amount must be positive"
	ErrMsgTxClosed              = "tx is closed"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context;
// handlers map them to HTTP responses via errors.Is.
var (
	// ErrInsufficientFunds rejects a round or withdrawal before any balance
	// effect. It is a normal player-visible outcome, not a server fault.
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrGameNotFound = errors.New(ErrMsgGameNotFound)

	// ErrInvalidGameConfig rejects rounds against games that fail boundary
	// validation (non-positive price, malformed chances). Operator-facing.
	ErrInvalidGameConfig = errors.New(ErrMsgInvalidGameConfig)

	// ErrOverrideMisconfigured marks an override whose prize index is out of
	// range. The round falls back to normal random selection.
	ErrOverrideMisconfigured = errors.New(ErrMsgOverrideMisconfigured)

	ErrOverrideNotFound = errors.New(ErrMsgOverrideNotFound)
	ErrWalletNotFound   = errors.New(ErrMsgWalletNotFound)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidAmount    = errors.New(ErrMsgInvalidAmount)
)
