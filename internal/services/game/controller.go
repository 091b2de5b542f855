package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/switchergame/switcher-go/internal/dependencies/clock"
	"github.com/switchergame/switcher-go/internal/dependencies/random"
	"github.com/switchergame/switcher-go/internal/model"
	"github.com/switchergame/switcher-go/internal/services/board"
	"github.com/switchergame/switcher-go/internal/services/cards"
	"github.com/switchergame/switcher-go/internal/storage"
)

const (
	// GameIDLength is the length of generated game ids
	GameIDLength = 12
	// GameIDAlphabet is the characters used in game ids
	GameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Publisher delivers topic-scoped events to a game's subscribers.
// The fan-out hub implements it; the controller never builds
// transport frames itself.
type Publisher interface {
	Publish(topic model.Topic, gameID model.GameID, payload any)
}

// Controller owns every state-changing operation on game aggregates.
// Operations against the same game are serialized by a per-game lock;
// different games proceed in parallel. Each operation persists fully
// before publishing any event for it.
type Controller struct {
	storage   storage.Storage
	boards    *board.Service
	cards     *cards.Service
	publisher Publisher
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger

	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	boards *board.Service,
	cards *cards.Service,
	publisher Publisher,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		boards:    boards,
		cards:     cards,
		publisher: publisher,
		clock:     clock,
		random:    random,
		logger:    logger,
		locks:     map[model.GameID]*sync.Mutex{},
	}
}

// lockGame acquires the mutex serializing operations on one game id.
// The returned func releases it.
func (c *Controller) lockGame(id model.GameID) func() {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &sync.Mutex{}
		c.locks[id] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// dropLock forgets a deleted game's lock
func (c *Controller) dropLock(id model.GameID) {
	c.mu.Lock()
	delete(c.locks, id)
	c.mu.Unlock()
}

// CreateGame creates a game with the host auto-joined. The game waits
// in the lobby until the host starts it.
func (c *Controller) CreateGame(ctx context.Context, name string, maxPlayers, minPlayers int, hostID model.PlayerID) (*model.Game, error) {
	if minPlayers < model.MinPlayersFloor || maxPlayers > model.MaxPlayersCeil || minPlayers > maxPlayers {
		return nil, model.ErrPreconditionsNotMet
	}

	var id model.GameID
	for {
		id = model.GameID(c.random.String(GameIDLength, GameIDAlphabet))
		exists, err := c.storage.GameExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	now := c.clock.Now()
	g := &model.Game{
		ID:         id,
		Name:       name,
		HostID:     hostID,
		MinPlayers: minPlayers,
		MaxPlayers: maxPlayers,
		Players:    []model.PlayerID{},
		PlayerInfo: map[model.PlayerID]*model.PlayerInfo{},
		MovPool:    cards.NewMovementPool(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := addPlayer(g, hostID); err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(id)),
		slog.String("host_id", string(hostID)),
		slog.Int("min_players", minPlayers),
		slog.Int("max_players", maxPlayers),
	)

	return g, nil
}

// GetGame retrieves a game by id
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// JoinGame adds a player to a waiting game
func (c *Controller) JoinGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	defer c.lockGame(gameID)()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := addPlayer(g, playerID); err != nil {
		return nil, err
	}
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	c.publisher.Publish(model.TopicMembership, g.ID, model.MembershipPayload{
		PlayerID: playerID,
		Joined:   true,
		Players:  g.Players,
	})

	return g, nil
}

// StartGame begins the game: fresh board, shuffled seating, first turn
func (c *Controller) StartGame(ctx context.Context, gameID model.GameID, requesterID model.PlayerID) error {
	defer c.lockGame(gameID)()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if g.HostID != requesterID {
		return model.ErrNotHost
	}
	if g.Started {
		return model.ErrGameStarted
	}
	if g.PlayerCount() < g.MinPlayers {
		return model.ErrPreconditionsNotMet
	}

	b, err := c.boards.GenerateDefault()
	if err != nil {
		return err
	}
	g.Board = b
	c.shufflePlayers(g)
	g.Started = true
	g.CurrentTurn = 0
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(g.ID)),
		slog.Int("player_count", g.PlayerCount()),
	)

	c.publisher.Publish(model.TopicStatus, g.ID, model.StatusPayload{Status: g.Status()})
	c.publisher.Publish(model.TopicBoard, g.ID, model.BoardPayload{Board: g.Board.AsList()})
	c.publisher.Publish(model.TopicTurn, g.ID, model.TurnPayload{
		Position: g.CurrentTurn,
		PlayerID: g.CurrentPlayer(),
	})

	return nil
}

// AdvanceTurn passes the turn to the player at the next position
func (c *Controller) AdvanceTurn(ctx context.Context, gameID model.GameID, requesterID model.PlayerID) error {
	defer c.lockGame(gameID)()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if !g.HasPlayer(requesterID) {
		return model.ErrPlayerNotInGame
	}
	if !g.Started {
		return model.ErrGameNotStarted
	}
	if g.CurrentPlayer() != requesterID {
		return model.ErrNotYourTurn
	}

	g.CurrentTurn = nextPosition(g, g.CurrentTurn)
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return err
	}

	c.publisher.Publish(model.TopicTurn, g.ID, model.TurnPayload{
		Position: g.CurrentTurn,
		PlayerID: g.CurrentPlayer(),
	})

	return nil
}

// ExitGame removes a player. Pre-start the seating renumbers and a
// departing host dissolves the game; post-start the game ends with a
// winner once a single player remains. The winner's id is returned
// when the exit decided the game.
func (c *Controller) ExitGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.PlayerID, error) {
	unlock := c.lockGame(gameID)
	deleted := false
	defer func() {
		unlock()
		// The lock entry must outlive the operation holding it
		if deleted {
			c.dropLock(gameID)
		}
	}()

	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !g.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotInGame
	}

	removePlayer(g, playerID)
	g.UpdatedAt = c.clock.Now()

	leave := model.MembershipPayload{
		PlayerID: playerID,
		Joined:   false,
		Players:  g.Players,
	}

	// Host leaving an unstarted lobby dissolves it
	if !g.Started && playerID == g.HostID {
		if err := c.storage.DeleteGame(ctx, g.ID); err != nil {
			return nil, err
		}
		deleted = true
		c.publisher.Publish(model.TopicMembership, g.ID, leave)
		c.publisher.Publish(model.TopicStatus, g.ID, model.StatusPayload{Status: "finished"})
		return nil, nil
	}

	// Last player standing wins
	if g.Started && g.PlayerCount() == 1 {
		winner := g.Players[0]
		if err := c.storage.DeleteGame(ctx, g.ID); err != nil {
			return nil, err
		}
		deleted = true
		c.publisher.Publish(model.TopicMembership, g.ID, leave)
		c.publisher.Publish(model.TopicWinner, g.ID, model.WinnerPayload{PlayerID: winner})
		c.publisher.Publish(model.TopicStatus, g.ID, model.StatusPayload{Status: "finished"})
		c.logger.Info("game won",
			slog.String("game_id", string(g.ID)),
			slog.String("winner_id", string(winner)),
		)
		return &winner, nil
	}

	// The departed player may have held the turn
	turnPassed := false
	if g.Started && g.CurrentPlayer() == "" {
		g.CurrentTurn = nextPosition(g, g.CurrentTurn)
		turnPassed = true
	}

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	c.publisher.Publish(model.TopicMembership, g.ID, leave)
	if turnPassed {
		c.publisher.Publish(model.TopicTurn, g.ID, model.TurnPayload{
			Position: g.CurrentTurn,
			PlayerID: g.CurrentPlayer(),
		})
	}

	return nil, nil
}

// addPlayer appends a player with the next turn position and a fresh
// personal figure pool
func addPlayer(g *model.Game, playerID model.PlayerID) error {
	if g.Started {
		return model.ErrGameStarted
	}
	if g.PlayerCount() == g.MaxPlayers {
		return model.ErrGameFull
	}
	if g.HasPlayer(playerID) {
		return nil
	}

	g.Players = append(g.Players, playerID)
	g.PlayerInfo[playerID] = &model.PlayerInfo{
		TurnPosition: g.PlayerCount() - 1,
		RemainingFig: cards.NewFigurePool(),
	}
	return nil
}

// removePlayer drops a player and, pre-start, renumbers the remaining
// turn positions so they stay contiguous from 0
func removePlayer(g *model.Game, playerID model.PlayerID) {
	removed := g.PlayerInfo[playerID]

	for i, p := range g.Players {
		if p == playerID {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			break
		}
	}
	delete(g.PlayerInfo, playerID)

	if !g.Started && removed != nil {
		for _, info := range g.PlayerInfo {
			if info.TurnPosition > removed.TurnPosition {
				info.TurnPosition--
			}
		}
	}
}

// shufflePlayers assigns a random permutation of 0..n-1 to the
// players' turn positions
func (c *Controller) shufflePlayers(g *model.Game) {
	positions := make([]int, g.PlayerCount())
	for i := range positions {
		positions[i] = i
	}
	for i := len(positions) - 1; i > 0; i-- {
		j := c.random.Intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
	for i, p := range g.Players {
		g.PlayerInfo[p].TurnPosition = positions[i]
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, name string, maxPlayers, minPlayers int, hostID model.PlayerID) (*model.Game, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	JoinGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error)
	StartGame(ctx context.Context, gameID model.GameID, requesterID model.PlayerID) error
	AdvanceTurn(ctx context.Context, gameID model.GameID, requesterID model.PlayerID) error
	ExitGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.PlayerID, error)
	DealFigureHand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]int, error)
	DealMovementHand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]int, error)
	PlayMoveCard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cardID, origin, dest int) error
	UndoLastMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	DiscardFigureCard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cardID int) error
	BlockFigureCard(ctx context.Context, gameID model.GameID, targetID model.PlayerID, cardID int) error
	SendChat(ctx context.Context, gameID model.GameID, playerID model.PlayerID, text string) error
	FindFigures(ctx context.Context, gameID model.GameID) ([]model.CandidateShape, error)
}

var _ ControllerInterface = (*Controller)(nil)

// nextPosition returns the next turn position held by a living
// player, cycling past positions vacated by mid-game exits. The cycle
// spans current itself, which may be a just-vacated seat above every
// remaining one.
func nextPosition(g *model.Game, current int) int {
	held := make(map[int]bool, g.PlayerCount())
	max := current
	for _, info := range g.PlayerInfo {
		held[info.TurnPosition] = true
		if info.TurnPosition > max {
			max = info.TurnPosition
		}
	}
	pos := current
	for i := 0; i <= max+1; i++ {
		pos = (pos + 1) % (max + 1)
		if held[pos] {
			return pos
		}
	}
	return current
}
