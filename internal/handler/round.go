package handler

import (
	"net/http"

	"github.com/luckpix/raspadinha/internal/round"
)

type RoundHandler struct {
	service round.Service
}

func NewRoundHandler(service round.Service) *RoundHandler {
	return &RoundHandler{service: service}
}

type PlayRoundRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	GameID string `json:"game_id" validate:"required,uuid"`
}

// HandlePlayRound runs one paid round and returns the settled result
func (h *RoundHandler) HandlePlayRound(w http.ResponseWriter, r *http.Request) {
	var req PlayRoundRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Play round"); err != nil {
		return
	}

	userID, err := parseUUIDField(w, req.UserID, ErrMsgInvalidUserID)
	if err != nil {
		return
	}
	gameID, err := parseUUIDField(w, req.GameID, ErrMsgInvalidGameID)
	if err != nil {
		return
	}

	result, err := h.service.PlayRound(r.Context(), userID, gameID)
	if err != nil {
		respondServiceError(w, r, "Play round", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
