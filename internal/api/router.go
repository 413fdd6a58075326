package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/numberguess/internal/api/handler"
	"github.com/mcoot/numberguess/internal/api/middleware"
	"github.com/mcoot/numberguess/internal/api/response"
	"github.com/mcoot/numberguess/internal/services/bot"
	"github.com/mcoot/numberguess/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService player.ServiceInterface
	BotService    *bot.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	botHandler := handler.NewBotHandler(cfg.BotService)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/score", playerHandler.SetScore).Methods(http.MethodPut)
	api.HandleFunc("/players/{id}/guess", playerHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/autoplay", botHandler.Autoplay).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
