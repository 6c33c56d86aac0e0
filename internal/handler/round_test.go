package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/luckpix/raspadinha/internal/domain"
)

func TestHandlePlayRound(t *testing.T) {
	userID := uuid.New()
	gameID := uuid.New()

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockRoundService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     func(ms *MockRoundService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing fields",
			reqBody:        PlayRoundRequest{},
			setupMocks:     func(ms *MockRoundService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "required",
		},
		{
			name:    "Insufficient funds",
			reqBody: PlayRoundRequest{UserID: userID.String(), GameID: gameID.String()},
			setupMocks: func(ms *MockRoundService) {
				ms.On("PlayRound", mock.Anything, userID, gameID).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedBody:   ErrMsgInsufficientFunds,
		},
		{
			name:    "Game not found",
			reqBody: PlayRoundRequest{UserID: userID.String(), GameID: gameID.String()},
			setupMocks: func(ms *MockRoundService) {
				ms.On("PlayRound", mock.Anything, userID, gameID).
					Return(nil, domain.ErrGameNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgGameNotFound,
		},
		{
			name:    "Success",
			reqBody: PlayRoundRequest{UserID: userID.String(), GameID: gameID.String()},
			setupMocks: func(ms *MockRoundService) {
				ms.On("PlayRound", mock.Anything, userID, gameID).
					Return(&domain.RoundResult{
						RoundID:         uuid.MustParse("00000000-0000-0000-0000-000000000001"),
						Outcome:         domain.OutcomeWin,
						Prize:           &domain.PrizeWon{Name: "R$ 100", ValueCentavos: 10000},
						Grid:            []string{"R$ 100", "R$ 100", "R$ 100", "a", "a", "b", "b", "c", "c"},
						BalanceCentavos: 19500,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"outcome":"WIN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRoundService)
			tt.setupMocks(mockService)
			h := NewRoundHandler(mockService)

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest("POST", "/round/play", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			h.HandlePlayRound(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}
