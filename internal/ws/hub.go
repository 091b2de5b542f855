package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/switchergame/switcher-go/internal/model"
)

// Event is the wire envelope for every broadcast message
type Event struct {
	Topic   model.Topic  `json:"topic"`
	GameID  model.GameID `json:"game_id"`
	Payload any          `json:"payload"`
}

type subKey struct {
	gameID model.GameID
	topic  model.Topic
}

type subscription struct {
	client *Client
	topics []model.Topic
}

type publishReq struct {
	key subKey
	msg []byte
}

// Hub fans broadcast events out to websocket subscribers. Subscribers
// are keyed by game and topic, and within a key they receive events in
// the order they subscribed.
type Hub struct {
	subs   map[subKey][]*Client
	mu     sync.RWMutex
	logger *slog.Logger

	register   chan *subscription
	unregister chan *Client
	publish    chan publishReq
	done       chan struct{}
}

// NewHub creates a hub and starts its event loop
func NewHub(logger *slog.Logger) *Hub {
	h := &Hub{
		subs:       make(map[subKey][]*Client),
		logger:     logger.With(slog.String("component", "ws")),
		register:   make(chan *subscription),
		unregister: make(chan *Client),
		publish:    make(chan publishReq, 256),
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	h.logger.Info("ws hub started")
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			for _, topic := range sub.topics {
				key := subKey{gameID: sub.client.gameID, topic: topic}
				h.subs[key] = append(h.subs[key], sub.client)
			}
			h.mu.Unlock()
			h.logger.Info("ws client subscribed",
				slog.String("game_id", string(sub.client.gameID)),
				slog.String("player_id", string(sub.client.playerID)),
				slog.Int("topics", len(sub.topics)))

		case client := <-h.unregister:
			h.mu.Lock()
			h.dropClient(client)
			h.mu.Unlock()

		case req := <-h.publish:
			h.mu.Lock()
			// Snapshot the list: a failed send mutates it mid-loop
			targets := append([]*Client(nil), h.subs[req.key]...)
			for _, client := range targets {
				select {
				case client.send <- req.msg:
				default:
					// Stalled subscriber: cut it loose rather than
					// block or reorder delivery for the others
					h.logger.Warn("ws client dropped - send buffer full",
						slog.String("player_id", string(client.playerID)))
					h.dropClient(client)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			seen := make(map[*Client]bool)
			for _, clients := range h.subs {
				for _, c := range clients {
					seen[c] = true
				}
			}
			for c := range seen {
				close(c.send)
			}
			h.subs = make(map[subKey][]*Client)
			h.mu.Unlock()
			h.logger.Info("ws hub stopped", slog.Int("disconnected_clients", len(seen)))
			return
		}
	}
}

// dropClient removes a client from every subscription list and closes
// its send channel. Callers must hold h.mu.
func (h *Hub) dropClient(client *Client) {
	found := false
	for key, clients := range h.subs {
		for i, c := range clients {
			if c == client {
				copy(clients[i:], clients[i+1:])
				clients[len(clients)-1] = nil
				h.subs[key] = clients[:len(clients)-1]
				found = true
				break
			}
		}
		if len(h.subs[key]) == 0 {
			delete(h.subs, key)
		}
	}
	if found {
		close(client.send)
		h.logger.Info("ws client unsubscribed",
			slog.String("game_id", string(client.gameID)),
			slog.String("player_id", string(client.playerID)))
	}
}

// Subscribe registers a client for the given topics within its game
func (h *Hub) Subscribe(client *Client, topics []model.Topic) {
	h.register <- &subscription{client: client, topics: topics}
}

// Unsubscribe removes a client from every topic it holds
func (h *Hub) Unsubscribe(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish broadcasts an event to every subscriber of the game's topic
func (h *Hub) Publish(topic model.Topic, gameID model.GameID, payload any) {
	msg, err := json.Marshal(Event{Topic: topic, GameID: gameID, Payload: payload})
	if err != nil {
		h.logger.Error("ws event marshal failed",
			slog.String("topic", string(topic)),
			slog.String("error", err.Error()))
		return
	}
	// Never drops an event. A full queue blocks the caller until the
	// run loop drains; only per-client send buffers may overflow.
	select {
	case h.publish <- publishReq{key: subKey{gameID: gameID, topic: topic}, msg: msg}:
	case <-h.done:
	}
}

// Close shuts down the hub and disconnects every subscriber
func (h *Hub) Close() {
	close(h.done)
}

// SubscriberCount returns the number of subscribers on a game's topic
func (h *Hub) SubscriberCount(gameID model.GameID, topic model.Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[subKey{gameID: gameID, topic: topic}])
}
