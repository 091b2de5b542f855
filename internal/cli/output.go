package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Game:
		o.printGame(v)
	case Hand:
		o.printHand(v)
	case ExitResult:
		o.printExitResult(v)
	case Figures:
		o.printFigures(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Game response type
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

// Hand response type
type Hand struct {
	PlayerID string `json:"player_id"`
	Cards    []int  `json:"cards"`
}

// ExitResult response type
type ExitResult struct {
	Winner *string `json:"winner"`
}

// Cell response type
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Candidate response type
type Candidate struct {
	Figure string `json:"figure"`
	Color  int    `json:"color"`
	Cells  []Cell `json:"cells"`
}

// Figures response type
type Figures struct {
	Candidates []Candidate `json:"candidates"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// colorGlyphs maps board color indices to display letters
var colorGlyphs = [...]string{"R", "B", "G", "Y"}

func glyph(color int) string {
	if color >= 0 && color < len(colorGlyphs) {
		return colorGlyphs[color]
	}
	return "?"
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (%s)\n", g.Name, g.ID)
	fmt.Printf("Status: %s\n", g.Status)
	fmt.Printf("Players (%d, min %d max %d):\n", len(g.Players), g.MinPlayers, g.MaxPlayers)
	for _, p := range g.Players {
		hostStr := ""
		if p == g.HostID {
			hostStr = " [host]"
		}
		fmt.Printf("  - %s%s\n", p, hostStr)
	}
	if g.Status == "in_progress" {
		fmt.Printf("Turn position: %d\n", g.CurrentTurn)
	}
	if len(g.Board) > 0 {
		fmt.Println("\nBoard:")
		o.printBoard(g.Board)
	}
}

func (o *Output) printBoard(board []int) {
	// Row-major 6x6 grid
	fmt.Print("    ")
	for col := 0; col < 6; col++ {
		fmt.Printf(" %d ", col)
	}
	fmt.Println()

	fmt.Print("   +")
	fmt.Print(strings.Repeat("---", 6))
	fmt.Println("+")

	for row := 0; row < 6; row++ {
		fmt.Printf(" %d |", row)
		for col := 0; col < 6; col++ {
			idx := col + row*6
			if idx < len(board) {
				fmt.Printf(" %s ", glyph(board[idx]))
			} else {
				fmt.Print(" . ")
			}
		}
		fmt.Println("|")
	}

	fmt.Print("   +")
	fmt.Print(strings.Repeat("---", 6))
	fmt.Println("+")
}

func (o *Output) printHand(h Hand) {
	cards := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		cards[i] = fmt.Sprintf("%d", c)
	}
	fmt.Printf("Hand: [%s]\n", strings.Join(cards, ", "))
}

func (o *Output) printExitResult(e ExitResult) {
	if e.Winner != nil {
		fmt.Printf("Left the game. Winner: %s\n", *e.Winner)
	} else {
		fmt.Println("Left the game")
	}
}

func (o *Output) printFigures(f Figures) {
	fmt.Printf("Candidates (%d):\n", len(f.Candidates))
	for _, c := range f.Candidates {
		cells := make([]string, len(c.Cells))
		for i, cell := range c.Cells {
			cells[i] = fmt.Sprintf("(%d,%d)", cell.X, cell.Y)
		}
		fmt.Printf("  - %s %s: %s\n", c.Figure, glyph(c.Color), strings.Join(cells, " "))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
