package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/switchergame/switcher-go/internal/model"
	"github.com/switchergame/switcher-go/internal/services/game"
	"github.com/switchergame/switcher-go/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API has no browser origin of its own to enforce
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsHandler upgrades connections onto the broadcast hub
type EventsHandler struct {
	hub    *ws.Hub
	games  game.ControllerInterface
	logger *slog.Logger
}

// NewEventsHandler creates a new websocket events handler
func NewEventsHandler(hub *ws.Hub, games game.ControllerInterface, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		hub:    hub,
		games:  games,
		logger: logger,
	}
}

// Serve handles GET /api/v1/games/{id}/events. Query parameters:
// player_id identifies the subscriber, topics is an optional
// comma-separated topic filter (default: all topics).
func (h *EventsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	playerID := model.PlayerID(r.URL.Query().Get("player_id"))
	if playerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	g, err := h.games.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !g.HasPlayer(playerID) {
		WriteError(w, model.ErrPlayerNotInGame)
		return
	}

	topics, err := parseTopics(r.URL.Query().Get("topics"))
	if err != nil {
		WriteError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.logger.Warn("ws upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := ws.NewClient(h.hub, h.games, conn, id, playerID, h.logger)
	client.Serve(topics)
}

func parseTopics(raw string) ([]model.Topic, error) {
	if raw == "" {
		return model.Topics, nil
	}
	var topics []model.Topic
	for _, name := range strings.Split(raw, ",") {
		topic := model.Topic(strings.TrimSpace(name))
		if !model.ValidTopic(topic) {
			return nil, NewInvalidRequestError("unknown topic: " + string(topic))
		}
		topics = append(topics, topic)
	}
	return topics, nil
}
