package handler

import (
	"net/http"

	"github.com/luckpix/raspadinha/internal/wallet"
)

type WalletHandler struct {
	service wallet.Service
}

func NewWalletHandler(service wallet.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

type BalanceResponse struct {
	BalanceCentavos int64 `json:"balance_centavos"`
}

// HandleGetBalance returns the user's current balance
func (h *WalletHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := ParseUUIDParam(r, w, "user_id", ErrMsgInvalidUserID)
	if !ok {
		return
	}

	balance, err := h.service.GetBalance(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get balance", err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{BalanceCentavos: balance})
}

type DepositRequest struct {
	UserID         string `json:"user_id" validate:"required,uuid"`
	AmountCentavos int64  `json:"amount_centavos" validate:"required,gt=0"`
	ExternalTxID   string `json:"external_tx_id" validate:"required,max=128"`
}

// HandleDeposit credits an external deposit. Redelivery of the same
// external transaction id returns the current balance without crediting.
func (h *WalletHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
		return
	}

	userID, err := parseUUIDField(w, req.UserID, ErrMsgInvalidUserID)
	if err != nil {
		return
	}

	result, err := h.service.CreditDeposit(r.Context(), userID, req.AmountCentavos, req.ExternalTxID)
	if err != nil {
		respondServiceError(w, r, "Deposit", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type WithdrawRequest struct {
	UserID         string `json:"user_id" validate:"required,uuid"`
	AmountCentavos int64  `json:"amount_centavos" validate:"required,gt=0"`
}

// HandleWithdraw debits funds for an external withdrawal
func (h *WalletHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req WithdrawRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Withdraw"); err != nil {
		return
	}

	userID, err := parseUUIDField(w, req.UserID, ErrMsgInvalidUserID)
	if err != nil {
		return
	}

	balance, err := h.service.DebitWithdrawal(r.Context(), userID, req.AmountCentavos)
	if err != nil {
		respondServiceError(w, r, "Withdraw", err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{BalanceCentavos: balance})
}
