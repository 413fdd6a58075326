package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/numberguess/internal/dependencies/clock"
	"github.com/mcoot/numberguess/internal/dependencies/random"
	"github.com/mcoot/numberguess/internal/services/bot"
	"github.com/mcoot/numberguess/internal/services/game"
	"github.com/mcoot/numberguess/internal/services/player"
	"github.com/mcoot/numberguess/internal/storage"
	"github.com/mcoot/numberguess/internal/storage/memory"
	redisstorage "github.com/mcoot/numberguess/internal/storage/redis"
	sqlitestorage "github.com/mcoot/numberguess/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Engine        *game.Engine
	PlayerService *player.Service
	BotService    *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds database settings (defaults used if nil and StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return store, nil
	case StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		if cfg.SQLiteConfig != nil {
			sqliteCfg = *cfg.SQLiteConfig
		}
		store, err := sqlitestorage.New(sqliteCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	engine := game.NewEngine(rnd)
	playerService := player.New(store, engine, clk, logger)

	strategies := map[string]bot.Strategy{
		"bisect": bot.NewBisectStrategy(),
		"random": bot.NewRandomStrategy(rnd),
	}
	botService := bot.NewService(playerService, strategies, logger)

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		Engine:        engine,
		PlayerService: playerService,
		BotService:    botService,
	}
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
