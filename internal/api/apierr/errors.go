package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/numberguess/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodePlayerNotFound = "PLAYER_NOT_FOUND"
	CodeGameOver       = "GAME_OVER"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Typed model errors carry the message shown to the caller
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, notFound.Msg}}
	}
	var invalid *model.ValidationError
	if errors.As(err, &invalid) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, invalid.Msg}}
	}
	var gameOver *model.GameOverError
	if errors.As(err, &gameOver) {
		return &httpError{http.StatusConflict, APIError{CodeGameOver, gameOver.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game over"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
