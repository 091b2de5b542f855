package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	Name string `json:"name"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	MinPlayers int    `json:"min_players"`
	MaxPlayers int    `json:"max_players"`
}

// PlayerActionRequest is the request body for operations that only
// identify the acting player
type PlayerActionRequest struct {
	PlayerID string `json:"player_id"`
}

// PlayMoveRequest is the request body for playing a movement card
type PlayMoveRequest struct {
	PlayerID string `json:"player_id"`
	CardID   int    `json:"card_id"`
	Origin   int    `json:"origin"`
	Dest     int    `json:"dest"`
}

// DiscardFigureRequest is the request body for discarding a figure card
type DiscardFigureRequest struct {
	PlayerID string `json:"player_id"`
	CardID   int    `json:"card_id"`
}

// BlockFigureRequest is the request body for blocking a figure card
// held by the target player
type BlockFigureRequest struct {
	TargetID string `json:"target_id"`
	CardID   int    `json:"card_id"`
}

// ChatRequest is the request body for sending a chat line
type ChatRequest struct {
	PlayerID string `json:"player_id"`
	Text     string `json:"text"`
}
