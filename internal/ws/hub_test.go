package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/switchergame/switcher-go/internal/model"
	"github.com/switchergame/switcher-go/internal/testutil"
)

func testClient(gameID model.GameID, playerID model.PlayerID, buffer int) *Client {
	return &Client{
		gameID:   gameID,
		playerID: playerID,
		send:     make(chan []byte, buffer),
	}
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client did not receive message")
		return nil
	}
}

func assertSilent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case msg := <-c.send:
		t.Fatalf("client unexpectedly received %q", string(msg))
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHub_PublishDeliversEnvelope(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	defer hub.Close()

	client := testClient("G1", "p1", 8)
	hub.Subscribe(client, []model.Topic{model.TopicBoard})
	time.Sleep(10 * time.Millisecond)

	hub.Publish(model.TopicBoard, "G1", model.BoardPayload{Board: []model.Color{model.ColorRed}})

	msg := receive(t, client)
	var event struct {
		Topic   model.Topic  `json:"topic"`
		GameID  model.GameID `json:"game_id"`
		Payload struct {
			Board []model.Color `json:"board"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(msg, &event); err != nil {
		t.Fatalf("envelope is not valid JSON: %v", err)
	}
	if event.Topic != model.TopicBoard {
		t.Errorf("envelope topic = %q, want %q", event.Topic, model.TopicBoard)
	}
	if event.GameID != "G1" {
		t.Errorf("envelope game_id = %q, want G1", event.GameID)
	}
	if len(event.Payload.Board) != 1 || event.Payload.Board[0] != model.ColorRed {
		t.Errorf("envelope payload = %+v", event.Payload)
	}
}

func TestHub_DeliveryFollowsSubscriptionOrder(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	defer hub.Close()

	clients := []*Client{
		testClient("G1", "p1", 8),
		testClient("G1", "p2", 8),
		testClient("G1", "p3", 8),
	}
	for _, c := range clients {
		hub.Subscribe(c, []model.Topic{model.TopicChat})
	}
	time.Sleep(10 * time.Millisecond)

	if got := hub.SubscriberCount("G1", model.TopicChat); got != 3 {
		t.Fatalf("SubscriberCount = %d, want 3", got)
	}

	for i := 0; i < 3; i++ {
		hub.Publish(model.TopicChat, "G1", model.ChatPayload{PlayerID: "p1", Text: "hi"})
	}

	// Every client gets every event
	for i, c := range clients {
		for j := 0; j < 3; j++ {
			if receive(t, c) == nil {
				t.Fatalf("client %d missing event %d", i, j)
			}
		}
	}
}

func TestHub_TopicsAreIsolated(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	defer hub.Close()

	boardSub := testClient("G1", "p1", 8)
	chatSub := testClient("G1", "p2", 8)
	hub.Subscribe(boardSub, []model.Topic{model.TopicBoard})
	hub.Subscribe(chatSub, []model.Topic{model.TopicChat})
	time.Sleep(10 * time.Millisecond)

	hub.Publish(model.TopicBoard, "G1", model.BoardPayload{})

	receive(t, boardSub)
	assertSilent(t, chatSub)
}

func TestHub_GamesAreIsolated(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	defer hub.Close()

	g1Sub := testClient("G1", "p1", 8)
	g2Sub := testClient("G2", "p1", 8)
	hub.Subscribe(g1Sub, []model.Topic{model.TopicTurn})
	hub.Subscribe(g2Sub, []model.Topic{model.TopicTurn})
	time.Sleep(10 * time.Millisecond)

	hub.Publish(model.TopicTurn, "G1", model.TurnPayload{Position: 1})

	receive(t, g1Sub)
	assertSilent(t, g2Sub)
}

func TestHub_SubscribeMultipleTopics(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	defer hub.Close()

	client := testClient("G1", "p1", 8)
	hub.Subscribe(client, []model.Topic{model.TopicBoard, model.TopicTurn})
	time.Sleep(10 * time.Millisecond)

	hub.Publish(model.TopicBoard, "G1", model.BoardPayload{})
	hub.Publish(model.TopicTurn, "G1", model.TurnPayload{})

	receive(t, client)
	receive(t, client)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	defer hub.Close()

	client := testClient("G1", "p1", 8)
	hub.Subscribe(client, []model.Topic{model.TopicBoard, model.TopicTurn})
	time.Sleep(10 * time.Millisecond)

	hub.Unsubscribe(client)
	time.Sleep(10 * time.Millisecond)

	if got := hub.SubscriberCount("G1", model.TopicBoard); got != 0 {
		t.Errorf("SubscriberCount(board) = %d after unsubscribe, want 0", got)
	}
	if got := hub.SubscriberCount("G1", model.TopicTurn); got != 0 {
		t.Errorf("SubscriberCount(turn) = %d after unsubscribe, want 0", got)
	}

	// Send channel is closed once the client is fully removed
	if _, open := <-client.send; open {
		t.Error("send channel still open after unsubscribe")
	}
}

func TestHub_StalledSubscriberIsDropped(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	defer hub.Close()

	stalled := testClient("G1", "p1", 1)
	healthy := testClient("G1", "p2", 8)
	hub.Subscribe(stalled, []model.Topic{model.TopicChat})
	hub.Subscribe(healthy, []model.Topic{model.TopicChat})
	time.Sleep(10 * time.Millisecond)

	// The stalled client drains nothing, so the second publish
	// overflows its buffer and evicts it
	hub.Publish(model.TopicChat, "G1", model.ChatPayload{Text: "one"})
	hub.Publish(model.TopicChat, "G1", model.ChatPayload{Text: "two"})
	time.Sleep(10 * time.Millisecond)

	if got := hub.SubscriberCount("G1", model.TopicChat); got != 1 {
		t.Errorf("SubscriberCount = %d after eviction, want 1", got)
	}

	// The healthy client still received both events
	receive(t, healthy)
	receive(t, healthy)

	// Further publishes keep working
	hub.Publish(model.TopicChat, "G1", model.ChatPayload{Text: "three"})
	receive(t, healthy)
}

func TestHub_BurstPublishKeepsEveryEvent(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	defer hub.Close()

	// More events than the hub's internal queue holds
	const total = 600

	client := testClient("G1", "p1", total)
	hub.Subscribe(client, []model.Topic{model.TopicChat})
	time.Sleep(10 * time.Millisecond)

	for i := 0; i < total; i++ {
		hub.Publish(model.TopicChat, "G1", map[string]int{"seq": i})
	}

	for i := 0; i < total; i++ {
		msg := receive(t, client)
		var event struct {
			Payload struct {
				Seq int `json:"seq"`
			} `json:"payload"`
		}
		if err := json.Unmarshal(msg, &event); err != nil {
			t.Fatalf("event %d is not valid JSON: %v", i, err)
		}
		if event.Payload.Seq != i {
			t.Fatalf("event %d arrived with seq %d", i, event.Payload.Seq)
		}
	}
}
