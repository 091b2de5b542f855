package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a game participant
type Player struct {
	ID        PlayerID
	Name      string
	CreatedAt time.Time
}

// PlayerInfo is the per-player-per-game record: hand contents, the
// personal figure pool, and seating order. Owned exclusively by the
// Game aggregate and never shared across games.
type PlayerInfo struct {
	TurnPosition int    `json:"turn_position"`
	HandFig      []int  `json:"hand_fig"`      // held figure-card ids, at most 3
	HandMov      []int  `json:"hand_mov"`      // held movement-card ids, at most 3
	RemainingFig []int  `json:"remaining_fig"` // personal pool of not-yet-drawn figure-card ids
	BlockedCard  *int   `json:"blocked_card,omitempty"`
}

// HandSize is the maximum number of cards of each kind a player holds
const HandSize = 3

// HasFigureCard reports whether the figure card is in the player's hand
func (p *PlayerInfo) HasFigureCard(cardID int) bool {
	return containsInt(p.HandFig, cardID)
}

// HasMoveCard reports whether the movement card is in the player's hand
func (p *PlayerInfo) HasMoveCard(cardID int) bool {
	return containsInt(p.HandMov, cardID)
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
