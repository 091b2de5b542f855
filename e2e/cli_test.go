package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchergame/switcher-go/internal/api"
	"github.com/switchergame/switcher-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	playerFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "switcher-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/switcher")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Each runner keeps its own saved identity
	playerFile := filepath.Join(t.TempDir(), "player")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		playerFile: playerFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--player-file", r.playerFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runAs(playerID string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--player", playerID,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Storage:        app.Storage,
		Clock:          app.Clock,
		GameController: app.GameController,
		Hub:            app.Hub,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type gameResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	HostID      string   `json:"host_id"`
	MinPlayers  int      `json:"min_players"`
	MaxPlayers  int      `json:"max_players"`
	Players     []string `json:"players"`
	CurrentTurn int      `json:"current_turn"`
	Board       []int    `json:"board"`
}

type handResponse struct {
	PlayerID string `json:"player_id"`
	Cards    []int  `json:"cards"`
}

type exitResponse struct {
	Winner *string `json:"winner"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// createGuest creates a guest player through the CLI and returns its id.
// The id is also saved to the runner's player file.
func createGuest(t *testing.T, cli *cliRunner, name string) string {
	t.Helper()

	output, err := cli.run("player", "guest", "--name", name)
	require.NoError(t, err, "output: %s", output)

	var player playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	require.Equal(t, name, player.Name)
	require.NotEmpty(t, player.ID)
	return player.ID
}

// advanceAsEither ends the current turn as whichever of the two players
// holds it. Turn order is shuffled at start, so both are tried.
func advanceAsEither(t *testing.T, cli *cliRunner, gameID string, playerIDs ...string) gameResponse {
	t.Helper()

	for _, id := range playerIDs {
		output, err := cli.runAs(id, "game", "advance", gameID)
		if err != nil {
			continue
		}
		var game gameResponse
		require.NoError(t, json.Unmarshal([]byte(output), &game))
		return game
	}

	t.Fatal("no player could advance the turn")
	return gameResponse{}
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayerCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	playerID := createGuest(t, cli, "Alice")

	// Get with no argument resolves the saved identity
	output, err := cli.run("player", "get")
	require.NoError(t, err, "output: %s", output)

	var player playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, playerID, player.ID)
	assert.Equal(t, "Alice", player.Name)
}

func TestCLI_GameCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	aliceID := createGuest(t, cli, "Alice")

	// Create a game
	output, err := cli.run("game", "create", "--name", "Friday night", "--min", "2", "--max", "4")
	require.NoError(t, err, "output: %s", output)

	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "Friday night", game.Name)
	assert.Equal(t, "waiting", game.Status)
	assert.Equal(t, aliceID, game.HostID)
	assert.Equal(t, []string{aliceID}, game.Players)
	assert.Empty(t, game.Board)
	gameID := game.ID

	// Get it back
	output, err = cli.run("game", "get", gameID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, gameID, game.ID)

	// A non-member cannot start it
	bobID := createGuest(t, newCLIRunner(t, ts.addr), "Bob")
	output, err = cli.runAs(bobID, "game", "start", gameID)
	assert.Error(t, err, "non-host should not be able to start")
	assert.Contains(t, strings.ToLower(output), "host")
}

func TestCLI_FullGameFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli1 := newCLIRunner(t, ts.addr)
	cli2 := &cliRunner{
		binaryPath: cli1.binaryPath,
		serverURL:  cli1.serverURL,
		playerFile: filepath.Join(t.TempDir(), "player2"),
	}

	aliceID := createGuest(t, cli1, "Alice")
	bobID := createGuest(t, cli2, "Bob")

	// Alice creates a game
	output, err := cli1.run("game", "create", "--name", "Showdown", "--min", "2", "--max", "2")
	require.NoError(t, err, "output: %s", output)
	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	gameID := game.ID
	t.Logf("Created game: %s", gameID)

	// Bob joins
	output, err = cli2.run("game", "join", gameID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Len(t, game.Players, 2)

	// Alice starts; the board appears with nine cells of each color
	output, err = cli1.run("game", "start", gameID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "in_progress", game.Status)
	require.Len(t, game.Board, 36)

	colorCounts := make(map[int]int)
	for _, c := range game.Board {
		colorCounts[c]++
	}
	for color := 0; color < 4; color++ {
		assert.Equal(t, 9, colorCounts[color], "color %d", color)
	}

	// Both players draw their starting hands
	for _, playerID := range []string{aliceID, bobID} {
		for _, kind := range []string{"figures", "movements"} {
			output, err = cli1.runAs(playerID, "game", "deal", gameID, "--kind", kind)
			require.NoError(t, err, "deal %s: %s", kind, output)

			var hand handResponse
			require.NoError(t, json.Unmarshal([]byte(output), &hand))
			assert.Equal(t, playerID, hand.PlayerID)
			assert.Len(t, hand.Cards, 3)
		}
	}

	// Figure candidates on the live board
	output, err = cli1.run("game", "figures", gameID)
	require.NoError(t, err, "output: %s", output)

	// Chat goes through without being a turn action
	output, err = cli2.run("game", "chat", gameID, "good luck")
	require.NoError(t, err, "output: %s", output)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Sent", msg.Message)

	// A full round of turns comes back to the starting position
	first := game.CurrentTurn
	game = advanceAsEither(t, cli1, gameID, aliceID, bobID)
	assert.NotEqual(t, first, game.CurrentTurn)
	game = advanceAsEither(t, cli1, gameID, aliceID, bobID)
	assert.Equal(t, first, game.CurrentTurn)

	// Bob resigns, leaving Alice the winner
	output, err = cli2.run("game", "exit", gameID)
	require.NoError(t, err, "output: %s", output)
	var exit exitResponse
	require.NoError(t, json.Unmarshal([]byte(output), &exit))
	require.NotNil(t, exit.Winner)
	assert.Equal(t, aliceID, *exit.Winner)
	t.Logf("Winner: %s", *exit.Winner)

	// The finished game is gone
	output, err = cli1.run("game", "get", gameID)
	assert.Error(t, err, "should not find game after it finished")
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Acting without an identity
	output, err := cli.run("game", "create", "--name", "Nope")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "no player id")

	// Fetching a game that does not exist
	_ = createGuest(t, cli, "Alice")
	output, err = cli.run("game", "get", "INVALID")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}
