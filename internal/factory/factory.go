package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/switchergame/switcher-go/internal/dependencies/clock"
	"github.com/switchergame/switcher-go/internal/dependencies/random"
	"github.com/switchergame/switcher-go/internal/services/board"
	"github.com/switchergame/switcher-go/internal/services/cards"
	"github.com/switchergame/switcher-go/internal/services/game"
	"github.com/switchergame/switcher-go/internal/storage"
	"github.com/switchergame/switcher-go/internal/storage/memory"
	redisstorage "github.com/switchergame/switcher-go/internal/storage/redis"
	"github.com/switchergame/switcher-go/internal/ws"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	CardService    *cards.Service
	GameController *game.Controller
	Hub            *ws.Hub
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	boardService := board.New(rnd)
	cardService := cards.New(rnd)
	hub := ws.NewHub(logger)
	gameController := game.NewController(store, boardService, cardService, hub, clk, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		CardService:    cardService,
		GameController: gameController,
		Hub:            hub,
	}
}

// Close releases resources held by the app
func (a *App) Close() error {
	a.Hub.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
