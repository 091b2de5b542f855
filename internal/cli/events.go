package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	var jsonOutput bool
	var topics string

	cmd := &cobra.Command{
		Use:   "events <id>",
		Short: "Stream broadcast events from a game",
		Long: `Connect to the game's websocket endpoint and stream events in real-time.

Topics include:
  - membership: players joining and leaving
  - status: lifecycle transitions
  - turn: turn changes
  - board: board snapshots after each move
  - figures / movements: hand updates
  - chat: chat lines
  - winner: winner announcement

Press Ctrl+C to disconnect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := requirePlayerID()
			if err != nil {
				return err
			}
			return streamEvents(args[0], playerID, topics, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")
	cmd.Flags().StringVar(&topics, "topics", "", "Comma-separated topic filter (default: all)")

	return cmd
}

// wsEvent is the broadcast envelope received on the socket
type wsEvent struct {
	Topic   string          `json:"topic"`
	GameID  string          `json:"game_id"`
	Payload json.RawMessage `json:"payload"`
}

func streamEvents(gameID, playerID, topics string, jsonOutput bool) error {
	wsURL, err := eventsURL(cfg.ServerURL, gameID, playerID, topics)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// Close the socket when interrupted so ReadMessage unblocks
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	if !jsonOutput {
		fmt.Printf("Connected to game %s\n", gameID)
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				if !jsonOutput {
					fmt.Println("\nDisconnected")
				}
				return nil
			}
			return fmt.Errorf("stream error: %w", err)
		}

		printEvent(data, jsonOutput)
	}
}

// eventsURL converts the HTTP server URL to the game's websocket URL
func eventsURL(serverURL, gameID, playerID, topics string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(serverURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path += "/api/v1/games/" + gameID + "/events"

	q := u.Query()
	q.Set("player_id", playerID)
	if topics != "" {
		q.Set("topics", topics)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func printEvent(data []byte, jsonOutput bool) {
	if jsonOutput {
		fmt.Println(string(data))
		return
	}

	var evt wsEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		fmt.Println(string(data))
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	payload := string(evt.Payload)
	if len(payload) > 100 {
		payload = payload[:100] + "..."
	}
	fmt.Printf("[%s] %s: %s\n", timestamp, evt.Topic, payload)
}
