package model

import "errors"

// Common errors used across the application
var (
	// Identity errors
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")

	// Capacity and lifecycle errors
	ErrGameFull            = errors.New("game is full")
	ErrGameStarted         = errors.New("game has already started")
	ErrGameNotStarted      = errors.New("game has not started")
	ErrPreconditionsNotMet = errors.New("game preconditions not met")

	// Authorization errors
	ErrNotHost     = errors.New("player is not the host")
	ErrNotYourTurn = errors.New("not this player's turn")

	// Consistency errors
	ErrPlayerNotInGame = errors.New("player is not in the game")
	ErrCardNotInHand   = errors.New("card is not in the player's hand")
	ErrInvalidMove     = errors.New("movement not permitted by the card")
	ErrNothingToUndo   = errors.New("no play to undo")

	// Board errors
	ErrInvalidBoardSize = errors.New("board size must be divisible by the color count")
	ErrInvalidCell      = errors.New("cell is outside the board")
)
