package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Player-count bounds for every game
const (
	MinPlayersFloor = 2
	MaxPlayersCeil  = 4
)

// PlayEntry is one record in a game's play history: the board as it
// was before the move, plus what was played. Supports single-level
// undo of the most recent play.
type PlayEntry struct {
	Board    Board    `json:"board"`
	PlayerID PlayerID `json:"player_id"`
	CardID   int      `json:"card_id"`
	Origin   int      `json:"origin"`
	Dest     int      `json:"dest"`
}

// Game is the aggregate root: membership, lifecycle, board, card
// pools and play history. All mutation goes through the game service,
// serialized per game id.
type Game struct {
	ID          GameID
	Name        string
	HostID      PlayerID
	MinPlayers  int
	MaxPlayers  int
	Started     bool
	Players     []PlayerID // join order
	CurrentTurn int        // the turn position currently playing
	Board       Board
	PlayerInfo  map[PlayerID]*PlayerInfo
	MovPool     []int // movement-card ids not yet dealt to anyone
	History     []PlayEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPlayer reports whether the player is a member of the game
func (g *Game) HasPlayer(id PlayerID) bool {
	for _, p := range g.Players {
		if p == id {
			return true
		}
	}
	return false
}

// PlayerCount returns the number of players currently in the game
func (g *Game) PlayerCount() int {
	return len(g.Players)
}

// CurrentPlayer returns the player whose turn position matches the
// game's current turn, or "" if the game has no players
func (g *Game) CurrentPlayer() PlayerID {
	for id, info := range g.PlayerInfo {
		if info.TurnPosition == g.CurrentTurn && g.HasPlayer(id) {
			return id
		}
	}
	return ""
}

// Status returns the lifecycle state as a wire-friendly string
func (g *Game) Status() string {
	if g.Started {
		return "in_progress"
	}
	return "waiting"
}
