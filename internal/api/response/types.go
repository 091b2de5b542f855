package response

import (
	"time"

	"github.com/switchergame/switcher-go/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

// Game represents a game in API responses. The board is only present
// once the game has started.
type Game struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	HostID      string   `json:"host_id"`
	MinPlayers  int      `json:"min_players"`
	MaxPlayers  int      `json:"max_players"`
	Players     []string `json:"players"`
	CurrentTurn int      `json:"current_turn"`
	Board       []int    `json:"board,omitempty"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	players := make([]string, len(g.Players))
	for i, p := range g.Players {
		players[i] = string(p)
	}

	var board []int
	if g.Started {
		board = make([]int, len(g.Board))
		for i, c := range g.Board {
			board[i] = int(c)
		}
	}

	return Game{
		ID:          string(g.ID),
		Name:        g.Name,
		Status:      g.Status(),
		HostID:      string(g.HostID),
		MinPlayers:  g.MinPlayers,
		MaxPlayers:  g.MaxPlayers,
		Players:     players,
		CurrentTurn: g.CurrentTurn,
		Board:       board,
	}
}

// Hand is the response for hand-dealing endpoints
type Hand struct {
	PlayerID string `json:"player_id"`
	Cards    []int  `json:"cards"`
}

// Exit is the response for leaving a game
type Exit struct {
	Winner *string `json:"winner"`
}

// ExitFromWinner builds an Exit response from an optional winner
func ExitFromWinner(winner *model.PlayerID) Exit {
	var w *string
	if winner != nil {
		s := string(*winner)
		w = &s
	}
	return Exit{Winner: w}
}

// Cell is a board coordinate in API responses
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Candidate is one valid figure placement on the current board
type Candidate struct {
	Figure string `json:"figure"`
	Color  int    `json:"color"`
	Cells  []Cell `json:"cells"`
}

// CandidateFromModel converts a model.CandidateShape
func CandidateFromModel(c model.CandidateShape) Candidate {
	cells := make([]Cell, 0, len(c.Figure.Offsets))
	for _, cell := range c.Cells() {
		cells = append(cells, Cell{X: cell.X, Y: cell.Y})
	}
	return Candidate{
		Figure: c.Figure.Name,
		Color:  int(c.Color),
		Cells:  cells,
	}
}

// Figures is the response for the figure search endpoint
type Figures struct {
	Candidates []Candidate `json:"candidates"`
}

// FiguresFromModel converts a candidate list
func FiguresFromModel(candidates []model.CandidateShape) Figures {
	out := make([]Candidate, len(candidates))
	for i, c := range candidates {
		out[i] = CandidateFromModel(c)
	}
	return Figures{Candidates: out}
}
