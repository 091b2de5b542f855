package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/switchergame/switcher-go/internal/api/request"
	"github.com/switchergame/switcher-go/internal/api/response"
	"github.com/switchergame/switcher-go/internal/model"
	"github.com/switchergame/switcher-go/internal/services/game"
	"github.com/switchergame/switcher-go/internal/storage"
)

// GameHandler handles game endpoints
type GameHandler struct {
	games   game.ControllerInterface
	storage storage.Storage
}

// NewGameHandler creates a new game handler
func NewGameHandler(games game.ControllerInterface, storage storage.Storage) *GameHandler {
	return &GameHandler{
		games:   games,
		storage: storage,
	}
}

// gameID extracts the game id path variable
func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// requirePlayer verifies the acting player exists
func (h *GameHandler) requirePlayer(w http.ResponseWriter, r *http.Request, id string) bool {
	if id == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return false
	}
	if _, err := h.storage.GetPlayer(r.Context(), model.PlayerID(id)); err != nil {
		WriteError(w, err)
		return false
	}
	return true
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if !h.requirePlayer(w, r, req.PlayerID) {
		return
	}

	g, err := h.games.CreateGame(r.Context(), req.Name, req.MaxPlayers, req.MinPlayers, model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Join handles POST /api/v1/games/{id}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if !h.requirePlayer(w, r, req.PlayerID) {
		return
	}

	g, err := h.games.JoinGame(r.Context(), gameID(r), model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Start handles POST /api/v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := h.games.StartGame(r.Context(), id, model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.games.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Advance handles POST /api/v1/games/{id}/advance
func (h *GameHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := h.games.AdvanceTurn(r.Context(), id, model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.games.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Exit handles POST /api/v1/games/{id}/exit
func (h *GameHandler) Exit(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	winner, err := h.games.ExitGame(r.Context(), gameID(r), model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ExitFromWinner(winner))
}

// DealFigures handles POST /api/v1/games/{id}/figures/deal
func (h *GameHandler) DealFigures(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	hand, err := h.games.DealFigureHand(r.Context(), gameID(r), model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Hand{PlayerID: req.PlayerID, Cards: hand})
}

// DealMovements handles POST /api/v1/games/{id}/movements/deal
func (h *GameHandler) DealMovements(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	hand, err := h.games.DealMovementHand(r.Context(), gameID(r), model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Hand{PlayerID: req.PlayerID, Cards: hand})
}

// PlayMove handles POST /api/v1/games/{id}/moves
func (h *GameHandler) PlayMove(w http.ResponseWriter, r *http.Request) {
	var req request.PlayMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	err := h.games.PlayMoveCard(r.Context(), id, model.PlayerID(req.PlayerID), req.CardID, req.Origin, req.Dest)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.games.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// UndoMove handles DELETE /api/v1/games/{id}/moves
func (h *GameHandler) UndoMove(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := h.games.UndoLastMove(r.Context(), id, model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.games.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// DiscardFigure handles POST /api/v1/games/{id}/figures/discard
func (h *GameHandler) DiscardFigure(w http.ResponseWriter, r *http.Request) {
	var req request.DiscardFigureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	err := h.games.DiscardFigureCard(r.Context(), gameID(r), model.PlayerID(req.PlayerID), req.CardID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// BlockFigure handles POST /api/v1/games/{id}/figures/block
func (h *GameHandler) BlockFigure(w http.ResponseWriter, r *http.Request) {
	var req request.BlockFigureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	err := h.games.BlockFigureCard(r.Context(), gameID(r), model.PlayerID(req.TargetID), req.CardID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Chat handles POST /api/v1/games/{id}/chat
func (h *GameHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req request.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Text == "" {
		WriteError(w, NewInvalidRequestError("text is required"))
		return
	}

	err := h.games.SendChat(r.Context(), gameID(r), model.PlayerID(req.PlayerID), req.Text)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Figures handles GET /api/v1/games/{id}/board/figures
func (h *GameHandler) Figures(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.games.FindFigures(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FiguresFromModel(candidates))
}
