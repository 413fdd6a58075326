package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/numberguess/internal/api/request"
	"github.com/mcoot/numberguess/internal/api/response"
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/services/player"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	players player.ServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(players player.ServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		players: players,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pub, err := h.players.Create(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, pub)
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDFromPath(w, r)
	if !ok {
		return
	}

	pub, err := h.players.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pub)
}

// SetScore handles PUT /api/v1/players/{id}/score
func (h *PlayerHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDFromPath(w, r)
	if !ok {
		return
	}

	var req request.SetScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Score == nil {
		WriteError(w, NewInvalidRequestError("score is required"))
		return
	}

	pub, err := h.players.SetScore(r.Context(), id, *req.Score)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pub)
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDFromPath(w, r)
	if !ok {
		return
	}

	removed, err := h.players.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromDeleted(removed))
}

// Guess handles POST /api/v1/players/{id}/guess
func (h *PlayerHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDFromPath(w, r)
	if !ok {
		return
	}

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Guess == nil {
		WriteError(w, NewInvalidRequestError("guess is required"))
		return
	}

	pub, err := h.players.Guess(r.Context(), id, *req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pub)
}

// playerIDFromPath parses the {id} route variable, writing a 400 when it is not an unsigned integer
func playerIDFromPath(w http.ResponseWriter, r *http.Request) (model.PlayerID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		WriteError(w, NewInvalidRequestError(fmt.Sprintf("invalid player id %q", raw)))
		return 0, false
	}
	return model.PlayerID(id), true
}
