package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mcoot/numberguess/internal/api/request"
	"github.com/mcoot/numberguess/internal/api/response"
	"github.com/mcoot/numberguess/internal/services/bot"
)

// BotHandler handles endpoints that play on a player's behalf
type BotHandler struct {
	botService *bot.Service
}

// NewBotHandler creates a new bot handler
func NewBotHandler(botService *bot.Service) *BotHandler {
	return &BotHandler{
		botService: botService,
	}
}

// Autoplay handles POST /api/v1/players/{id}/autoplay
func (h *BotHandler) Autoplay(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDFromPath(w, r)
	if !ok {
		return
	}

	// The body is optional
	var req request.AutoplayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.botService.Play(r.Context(), id, req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
