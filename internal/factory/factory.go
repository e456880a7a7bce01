package factory

import (
	"log/slog"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/placement"
	"github.com/mcoot/battleship-go/internal/services/session"
	"github.com/mcoot/battleship-go/internal/storage"
	"github.com/mcoot/battleship-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Generator         *placement.Generator
	SessionController *session.Controller
	BotService        *bot.Service

	// Game settings every new session uses
	BoardSize int
	Fleet     model.Fleet
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes games reproducible (optional)
	// If zero, randomness comes from crypto/rand
	Seed uint64
	// BoardSize is the board dimension (optional)
	// If zero, defaults to model.DefaultBoardSize
	BoardSize int
	// Fleet is placed on every board (optional)
	// If nil, defaults to model.StandardFleet()
	Fleet model.Fleet
	// Placement bounds the layout search (optional)
	// If zero value, defaults to placement.DefaultConfig()
	Placement placement.Config
	// BotStrategy names the computer player's strategy (optional)
	// If empty, defaults to bot.StrategyRandom
	BotStrategy string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	return newWithDependencies(memory.New(), clk, rnd, cfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) (*App, error) {
	size := cfg.BoardSize
	if size == 0 {
		size = model.DefaultBoardSize
	}
	fleet := cfg.Fleet
	if fleet == nil {
		fleet = model.StandardFleet()
	}
	if err := fleet.Validate(size); err != nil {
		return nil, err
	}

	// Use default placement config if not provided
	placementCfg := cfg.Placement
	if placementCfg == (placement.Config{}) {
		placementCfg = placement.DefaultConfig()
	}

	strategy, err := bot.NewStrategy(cfg.BotStrategy, rnd)
	if err != nil {
		return nil, err
	}

	// Create services
	generator := placement.New(rnd, placementCfg, logger)
	sessionController := session.NewController(store, generator, clk, logger)
	botService := bot.NewService(sessionController, strategy, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Generator:         generator,
		SessionController: sessionController,
		BotService:        botService,
		BoardSize:         size,
		Fleet:             fleet,
	}, nil
}
