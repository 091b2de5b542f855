package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/switchergame/switcher-go/internal/model"
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
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeGameFull            = "GAME_FULL"
	CodeGameStarted         = "GAME_STARTED"
	CodeGameNotStarted      = "GAME_NOT_STARTED"
	CodePreconditionsNotMet = "PRECONDITIONS_NOT_MET"
	CodeNotHost             = "NOT_HOST"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodePlayerNotInGame     = "PLAYER_NOT_IN_GAME"
	CodeCardNotInHand       = "CARD_NOT_IN_HAND"
	CodeInvalidMove         = "INVALID_MOVE"
	CodeNothingToUndo       = "NOTHING_TO_UNDO"
	CodeInternalError       = "INTERNAL_ERROR"
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

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameFull):
		return &httpError{http.StatusConflict, APIError{CodeGameFull, "Game is full"}}
	case errors.Is(err, model.ErrGameStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameStarted, "Game has already started"}}
	case errors.Is(err, model.ErrGameNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameNotStarted, "Game has not started"}}
	case errors.Is(err, model.ErrPreconditionsNotMet):
		return &httpError{http.StatusConflict, APIError{CodePreconditionsNotMet, "Preconditions not met"}}
	case errors.Is(err, model.ErrNotHost):
		return &httpError{http.StatusForbidden, APIError{CodeNotHost, "Only the host can perform this action"}}
	case errors.Is(err, model.ErrNotYourTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrPlayerNotInGame):
		return &httpError{http.StatusForbidden, APIError{CodePlayerNotInGame, "Player is not in this game"}}
	case errors.Is(err, model.ErrCardNotInHand):
		return &httpError{http.StatusConflict, APIError{CodeCardNotInHand, "Card is not in your hand"}}
	case errors.Is(err, model.ErrInvalidMove):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMove, "Move is not allowed by that card"}}
	case errors.Is(err, model.ErrInvalidCell):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMove, "Cell is out of bounds"}}
	case errors.Is(err, model.ErrNothingToUndo):
		return &httpError{http.StatusConflict, APIError{CodeNothingToUndo, "No move to undo"}}
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
