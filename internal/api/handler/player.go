package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/switchergame/switcher-go/internal/api/request"
	"github.com/switchergame/switcher-go/internal/api/response"
	"github.com/switchergame/switcher-go/internal/dependencies/clock"
	"github.com/switchergame/switcher-go/internal/model"
	"github.com/switchergame/switcher-go/internal/storage"
)

// PlayerHandler handles player identity endpoints
type PlayerHandler struct {
	storage storage.Storage
	clock   clock.Clock
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(storage storage.Storage, clock clock.Clock) *PlayerHandler {
	return &PlayerHandler{
		storage: storage,
		clock:   clock,
	}
}

// CreateGuest handles POST /api/v1/players/guest
func (h *PlayerHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	player := &model.Player{
		ID:        model.PlayerID(uuid.NewString()),
		Name:      req.Name,
		CreatedAt: h.clock.Now(),
	}

	if err := h.storage.SavePlayer(r.Context(), player); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.storage.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
