package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcrae/bullscows/internal/dependencies/clock"
	"github.com/mcrae/bullscows/internal/dependencies/random"
	"github.com/mcrae/bullscows/internal/services/account"
	"github.com/mcrae/bullscows/internal/services/round"
	"github.com/mcrae/bullscows/internal/services/secret"
	"github.com/mcrae/bullscows/internal/services/stats"
	"github.com/mcrae/bullscows/internal/storage"
	"github.com/mcrae/bullscows/internal/storage/jsonfile"
	"github.com/mcrae/bullscows/internal/storage/memory"
	redisstorage "github.com/mcrae/bullscows/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeJSONFile = "jsonfile"
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SecretGenerator *secret.Generator
	RoundController *round.Controller
	StatsService    *stats.Service
	AccountService  *account.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("jsonfile", "memory" or
	// "redis"). If empty, defaults to "jsonfile".
	StorageType string
	// AccountsPath and StatsPath locate the JSON documents (required
	// when StorageType is "jsonfile")
	AccountsPath string
	StatsPath    string
	// RedisConfig holds Redis connection settings (required if
	// StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeJSONFile
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeJSONFile:
		if cfg.AccountsPath == "" || cfg.StatsPath == "" {
			return nil, errors.New("AccountsPath and StatsPath required when StorageType is jsonfile")
		}
		fileStore, err := jsonfile.New(cfg.AccountsPath, cfg.StatsPath)
		if err != nil {
			return nil, err
		}
		store = fileStore
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
		return nil, errors.New("invalid StorageType: must be 'jsonfile', 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	generator := secret.NewGenerator(rnd)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		SecretGenerator: generator,
		RoundController: round.NewController(generator, clk, logger),
		StatsService:    stats.New(store, clk, logger),
		AccountService:  account.New(store, logger),
	}
}

// Close releases storage resources for backends that hold connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
