package placement

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// Config bounds the random search for a legal layout
type Config struct {
	// MaxOriginAttempts is how many origins are drawn for one ship before
	// the whole layout is thrown away and placement restarts
	MaxOriginAttempts int
	// MaxRestarts is how many full restarts are allowed before giving up
	MaxRestarts int
}

// DefaultConfig returns the limits used by the standard game
func DefaultConfig() Config {
	return Config{
		MaxOriginAttempts: 1000,
		MaxRestarts:       100,
	}
}

// Generator places fleets on fresh boards
type Generator struct {
	random random.Random
	cfg    Config
	logger *slog.Logger
}

// New creates a Generator drawing from rnd.
// A non-positive MaxOriginAttempts or a negative MaxRestarts falls back to
// DefaultConfig; MaxRestarts of 0 means the first starved layout is fatal.
func New(rnd random.Random, cfg Config, logger *slog.Logger) *Generator {
	defaults := DefaultConfig()
	if cfg.MaxOriginAttempts <= 0 {
		cfg.MaxOriginAttempts = defaults.MaxOriginAttempts
	}
	if cfg.MaxRestarts < 0 {
		cfg.MaxRestarts = defaults.MaxRestarts
	}
	return &Generator{
		random: rnd,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "placement")),
	}
}

// Generate returns a size×size board holding every ship of the fleet, with at
// least one water cell (diagonals included) between any two ships
func (g *Generator) Generate(size int, fleet model.Fleet) (*model.Board, error) {
	if err := fleet.Validate(size); err != nil {
		return nil, err
	}
	ships := fleet.LargestFirst()

	for restart := 0; ; restart++ {
		grid := model.NewBoard(size)
		placed, failedLength := g.placeAll(grid, ships)
		if placed {
			return grid.Clone(), nil
		}

		if restart >= g.cfg.MaxRestarts {
			g.logger.Error("placement starved",
				slog.Int("board_size", size),
				slog.Int("restarts", restart),
			)
			return nil, fmt.Errorf("%w: board size %d, %d restarts", model.ErrPlacementStarved, size, restart)
		}

		g.logger.Warn("placement restarting",
			slog.Int("board_size", size),
			slog.Int("failed_ship_length", failedLength),
			slog.Int("restart", restart+1),
		)
	}
}

// placeAll stamps every ship onto grid, largest first. On failure it returns
// the length of the ship that could not be placed.
func (g *Generator) placeAll(grid *model.Board, ships model.Fleet) (bool, int) {
	for _, class := range ships {
		for i := 0; i < class.Count; i++ {
			if !g.placeShip(grid, class.Length) {
				return false, class.Length
			}
		}
	}
	return true, 0
}

// placeShip draws random origins until one admits a legal orientation
func (g *Generator) placeShip(grid *model.Board, length int) bool {
	for attempt := 0; attempt < g.cfg.MaxOriginAttempts; attempt++ {
		origin := model.Position{
			Row: g.random.Intn(grid.Size),
			Col: g.random.Intn(grid.Size),
		}

		viable := ViableOrientations(grid, origin, length)
		if len(viable) == 0 {
			continue
		}

		orientation := viable[0]
		if len(viable) > 1 {
			orientation = viable[g.random.Intn(len(viable))]
		}
		Stamp(grid, origin, orientation, length)
		return true
	}
	return false
}

// IsLegal reports whether a ship segment may occupy pos: it must be on the
// board and its whole 3×3 neighbourhood (clipped at the edges) must be water
func IsLegal(grid *model.Board, pos model.Position) bool {
	if !grid.IsValidPosition(pos) {
		return false
	}
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			neighbour := pos.Add(dRow, dCol)
			if grid.IsValidPosition(neighbour) && !grid.At(neighbour).IsWater() {
				return false
			}
		}
	}
	return true
}

// ViableOrientations returns the orientations along which a ship of the given
// length fits legally from origin. A single-cell ship only needs a legal
// origin and is reported as facing up.
func ViableOrientations(grid *model.Board, origin model.Position, length int) []model.Orientation {
	if !IsLegal(grid, origin) {
		return nil
	}
	if length == 1 {
		return []model.Orientation{model.OrientationUp}
	}

	var viable []model.Orientation
	for _, o := range model.Orientations {
		fits := true
		for i := 1; i < length; i++ {
			if !IsLegal(grid, o.Step(origin, i)) {
				fits = false
				break
			}
		}
		if fits {
			viable = append(viable, o)
		}
	}
	return viable
}

// Stamp writes a ship of the given length onto grid
func Stamp(grid *model.Board, origin model.Position, o model.Orientation, length int) {
	for i := 0; i < length; i++ {
		grid.Set(o.Step(origin, i), model.Ship(length))
	}
}

// Interface for dependency injection
type GeneratorInterface interface {
	Generate(size int, fleet model.Fleet) (*model.Board, error)
}

var _ GeneratorInterface = (*Generator)(nil)
