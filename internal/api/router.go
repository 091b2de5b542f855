package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/switchergame/switcher-go/internal/api/handler"
	apimiddleware "github.com/switchergame/switcher-go/internal/api/middleware"
	"github.com/switchergame/switcher-go/internal/dependencies/clock"
	"github.com/switchergame/switcher-go/internal/middleware"
	"github.com/switchergame/switcher-go/internal/services/game"
	"github.com/switchergame/switcher-go/internal/storage"
	"github.com/switchergame/switcher-go/internal/ws"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Storage        storage.Storage
	Clock          clock.Clock
	GameController game.ControllerInterface
	Hub            *ws.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.Storage, cfg.Clock)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Storage)
	eventsHandler := handler.NewEventsHandler(cfg.Hub, cfg.GameController, cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Player identity
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)

	// Game lifecycle
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/join", gameHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/start", gameHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/advance", gameHandler.Advance).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/exit", gameHandler.Exit).Methods(http.MethodPost)

	// Cards and moves
	api.HandleFunc("/games/{id}/figures/deal", gameHandler.DealFigures).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/figures/discard", gameHandler.DiscardFigure).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/figures/block", gameHandler.BlockFigure).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/movements/deal", gameHandler.DealMovements).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/moves", gameHandler.PlayMove).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/moves", gameHandler.UndoMove).Methods(http.MethodDelete)

	// Board queries and chat
	api.HandleFunc("/games/{id}/board/figures", gameHandler.Figures).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/chat", gameHandler.Chat).Methods(http.MethodPost)

	// Event stream (websocket upgrade happens inside the handler, so it
	// sits outside the logging middleware's response wrapper)
	r.HandleFunc("/api/v1/games/{id}/events", eventsHandler.Serve).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
