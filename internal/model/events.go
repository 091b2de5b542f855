package model

// Topic identifies a fan-out broadcast channel within a game
type Topic string

const (
	TopicMembership Topic = "membership" // players joining and leaving
	TopicStatus     Topic = "status"     // lifecycle transitions
	TopicTurn       Topic = "turn"       // turn changes
	TopicBoard      Topic = "board"      // board snapshots
	TopicFigureHand Topic = "figures"    // figure-hand updates
	TopicMoveHand   Topic = "movements"  // movement-hand updates
	TopicChat       Topic = "chat"       // chat relay
	TopicWinner     Topic = "winner"     // winner announcement
)

// Topics lists every broadcast topic
var Topics = []Topic{
	TopicMembership,
	TopicStatus,
	TopicTurn,
	TopicBoard,
	TopicFigureHand,
	TopicMoveHand,
	TopicChat,
	TopicWinner,
}

// ValidTopic reports whether t names a known topic
func ValidTopic(t Topic) bool {
	for _, known := range Topics {
		if known == t {
			return true
		}
	}
	return false
}

// MembershipPayload describes a join or leave
type MembershipPayload struct {
	PlayerID PlayerID   `json:"player_id"`
	Joined   bool       `json:"joined"`
	Players  []PlayerID `json:"players"`
}

// StatusPayload describes a lifecycle transition
type StatusPayload struct {
	Status string `json:"status"`
}

// TurnPayload describes whose turn it now is
type TurnPayload struct {
	Position int      `json:"position"`
	PlayerID PlayerID `json:"player_id"`
}

// BoardPayload carries a full board snapshot
type BoardPayload struct {
	Board []Color `json:"board"`
}

// HandPayload carries a player's current hand of one card kind
type HandPayload struct {
	PlayerID PlayerID `json:"player_id"`
	Cards    []int    `json:"cards"`
}

// ChatPayload relays a chat line
type ChatPayload struct {
	PlayerID PlayerID `json:"player_id"`
	Text     string   `json:"text"`
}

// WinnerPayload announces the last player standing
type WinnerPayload struct {
	PlayerID PlayerID `json:"player_id"`
}
