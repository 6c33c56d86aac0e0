package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/luckpix/raspadinha/internal/domain"
	"github.com/luckpix/raspadinha/internal/rules"
)

type AdminHandler struct {
	service rules.Service
}

func NewAdminHandler(service rules.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

type PrizeRequest struct {
	Name          string  `json:"name" validate:"required,max=64"`
	ValueCentavos int64   `json:"value_centavos" validate:"gte=0"`
	Chance        float64 `json:"chance" validate:"gte=0,lte=100"`
	Image         string  `json:"image" validate:"max=512"`
}

type SaveGameRequest struct {
	ID            string         `json:"id" validate:"omitempty,uuid"`
	Name          string         `json:"name" validate:"required,max=128"`
	PriceCentavos int64          `json:"price_centavos" validate:"required,gt=0"`
	CoverImage    string         `json:"cover_image" validate:"max=512"`
	Prizes        []PrizeRequest `json:"prizes" validate:"required,min=1,dive"`
}

// HandleSaveGame creates or updates a game definition
func (h *AdminHandler) HandleSaveGame(w http.ResponseWriter, r *http.Request) {
	var req SaveGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Save game"); err != nil {
		return
	}

	game := &domain.Game{
		Name:          req.Name,
		PriceCentavos: req.PriceCentavos,
		CoverImage:    req.CoverImage,
		Prizes:        make([]domain.PrizeEntry, 0, len(req.Prizes)),
	}
	if req.ID != "" {
		id, err := parseUUIDField(w, req.ID, ErrMsgInvalidGameID)
		if err != nil {
			return
		}
		game.ID = id
	} else {
		game.ID = uuid.New()
	}
	for _, p := range req.Prizes {
		game.Prizes = append(game.Prizes, domain.PrizeEntry{
			Name:          p.Name,
			ValueCentavos: p.ValueCentavos,
			Chance:        p.Chance,
			Image:         p.Image,
		})
	}

	if err := h.service.SaveGame(r.Context(), game); err != nil {
		respondServiceError(w, r, "Save game", err)
		return
	}

	respondJSON(w, http.StatusCreated, game)
}

// HandleGetGame returns one game definition
func (h *AdminHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := ParseUUIDParam(r, w, "id", ErrMsgInvalidGameID)
	if !ok {
		return
	}

	game, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, "Get game", err)
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// HandleListGames returns all configured games
func (h *AdminHandler) HandleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.ListGames(r.Context())
	if err != nil {
		respondServiceError(w, r, "List games", err)
		return
	}

	respondJSON(w, http.StatusOK, games)
}

type CreateOverrideRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid"`
	GameID       string `json:"game_id" validate:"required,uuid"`
	PrizeIndex   int    `json:"prize_index" validate:"gte=-1"`
	TriggerRound int64  `json:"trigger_round" validate:"required,gte=1"`
}

// HandleCreateOverride arms a rigged outcome for a (user, game) pair.
// PrizeIndex -1 forces a loss; any other value forces that prize.
func (h *AdminHandler) HandleCreateOverride(w http.ResponseWriter, r *http.Request) {
	var req CreateOverrideRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create override"); err != nil {
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

	override := &domain.Override{
		ID:           uuid.New(),
		UserID:       userID,
		GameID:       gameID,
		PrizeIndex:   req.PrizeIndex,
		TriggerRound: req.TriggerRound,
		Active:       true,
	}

	if err := h.service.CreateOverride(r.Context(), override); err != nil {
		respondServiceError(w, r, "Create override", err)
		return
	}

	respondJSON(w, http.StatusCreated, override)
}

// HandleCancelOverride disarms an override without firing it
func (h *AdminHandler) HandleCancelOverride(w http.ResponseWriter, r *http.Request) {
	overrideID, ok := ParseUUIDParam(r, w, "id", ErrMsgInvalidOverrideID)
	if !ok {
		return
	}

	if err := h.service.CancelOverride(r.Context(), overrideID); err != nil {
		respondServiceError(w, r, "Cancel override", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Override cancelled"})
}
