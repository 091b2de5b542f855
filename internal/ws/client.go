package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/switchergame/switcher-go/internal/model"
	"github.com/switchergame/switcher-go/internal/services/game"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong before the peer is considered gone
	pongWait = 60 * time.Second

	// Time between keepalive pings, must be under pongWait
	pingPeriod = 30 * time.Second

	// Buffer size for outgoing messages
	sendBufferSize = 256
)

// Client is a single websocket subscriber bound to one game
type Client struct {
	hub      *Hub
	games    game.ControllerInterface
	conn     *websocket.Conn
	gameID   model.GameID
	playerID model.PlayerID
	logger   *slog.Logger
	send     chan []byte
}

// NewClient wraps an upgraded websocket connection
func NewClient(hub *Hub, games game.ControllerInterface, conn *websocket.Conn, gameID model.GameID, playerID model.PlayerID, logger *slog.Logger) *Client {
	return &Client{
		hub:      hub,
		games:    games,
		conn:     conn,
		gameID:   gameID,
		playerID: playerID,
		logger:   logger.With(slog.String("game_id", string(gameID)), slog.String("player_id", string(playerID))),
		send:     make(chan []byte, sendBufferSize),
	}
}

// Serve subscribes the client to the given topics and runs its pumps.
// It returns when the connection closes.
func (c *Client) Serve(topics []model.Topic) {
	c.hub.Subscribe(c, topics)
	go c.writePump()
	c.readPump()
}

// query is an inbound client request on the socket
type query struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// gameSnapshot is the reply to a get_game query
type gameSnapshot struct {
	Type    string           `json:"type"`
	Name    string           `json:"name"`
	Status  string           `json:"status"`
	Players []model.PlayerID `json:"players"`
	HostID  model.PlayerID   `json:"host_id"`
	Turn    int              `json:"turn"`
}

// readPump consumes inbound queries until the connection drops
func (c *Client) readPump() {
	defer func() {
		c.hub.Unsubscribe(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("ws read failed", slog.String("error", err.Error()))
			}
			return
		}

		var q query
		if err := json.Unmarshal(data, &q); err != nil {
			c.logger.Warn("ws query unparseable", slog.String("error", err.Error()))
			continue
		}
		c.handleQuery(q)
	}
}

func (c *Client) handleQuery(q query) {
	ctx := context.Background()
	switch q.Type {
	case "get_board":
		g, err := c.games.GetGame(ctx, c.gameID)
		if err != nil {
			c.logger.Warn("ws get_board failed", slog.String("error", err.Error()))
			return
		}
		c.reply(Event{
			Topic:   model.TopicBoard,
			GameID:  c.gameID,
			Payload: model.BoardPayload{Board: g.Board.AsList()},
		})

	case "get_game":
		g, err := c.games.GetGame(ctx, c.gameID)
		if err != nil {
			c.logger.Warn("ws get_game failed", slog.String("error", err.Error()))
			return
		}
		c.reply(gameSnapshot{
			Type:    "game",
			Name:    g.Name,
			Status:  g.Status(),
			Players: g.Players,
			HostID:  g.HostID,
			Turn:    g.CurrentTurn,
		})

	case "chat":
		if q.Text == "" {
			return
		}
		if err := c.games.SendChat(ctx, c.gameID, c.playerID, q.Text); err != nil {
			c.logger.Warn("ws chat rejected", slog.String("error", err.Error()))
		}

	default:
		c.logger.Warn("ws unknown query", slog.String("type", q.Type))
	}
}

// reply sends a message to this client only
func (c *Client) reply(msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("ws reply marshal failed", slog.String("error", err.Error()))
		return
	}
	select {
	case c.send <- data:
	default:
		c.logger.Warn("ws reply dropped - send buffer full")
	}
}

// writePump flushes outbound messages and keepalive pings to the peer
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
