package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/placement"
	"github.com/mcoot/battleship-go/internal/storage"
)

// Controller runs the turn loop of a session
type Controller struct {
	storage   storage.Storage
	generator placement.GeneratorInterface
	clock     clock.Clock
	logger    *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	store storage.Storage,
	generator placement.GeneratorInterface,
	clk clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   store,
		generator: generator,
		clock:     clk,
		logger:    logger.With(slog.String("component", "session-controller")),
	}
}

// NewGame generates a board for each side and stores a fresh session.
// Player one moves first.
func (c *Controller) NewGame(ctx context.Context, mode model.GameMode, size int, fleet model.Fleet) (*model.Session, error) {
	if mode != model.GameModePVP && mode != model.GameModePVE {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidGameMode, mode)
	}

	var boards [2]*model.Board
	for _, side := range model.Sides {
		board, err := c.generator.Generate(size, fleet)
		if err != nil {
			return nil, fmt.Errorf("generating board for %s: %w", side, err)
		}
		boards[side] = board
	}

	id := model.SessionID(uuid.NewString())
	sess := model.NewSession(id, mode, fleet, boards[model.PlayerOne], boards[model.PlayerTwo], c.clock.Now())

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.String("mode", string(mode)),
		slog.Int("board_size", size),
		slog.Int("ship_cells", fleet.TotalCells()),
	)

	return sess, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// TakeTurn fires the shooter's shot at the opponent's board.
// Every resolved shot passes the turn, repeats and out-of-bounds shots
// included, unless it defeats the opponent and finishes the session.
func (c *Controller) TakeTurn(ctx context.Context, id model.SessionID, shooter model.Side, pos model.Position) (model.FireOutcome, error) {
	if !shooter.Valid() {
		return model.FireOutcome{}, fmt.Errorf("%w: %d", model.ErrInvalidSide, int(shooter))
	}

	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return model.FireOutcome{}, err
	}

	switch sess.State {
	case model.SessionStateFinished:
		return model.FireOutcome{}, model.ErrGameComplete
	case model.SessionStateAbandoned:
		return model.FireOutcome{}, model.ErrGameAbandoned
	}
	if sess.Turn != shooter {
		return model.FireOutcome{}, model.ErrNotSideTurn
	}

	target := shooter.Opponent()
	outcome, err := Fire(sess, target, pos)
	if err != nil {
		return model.FireOutcome{}, err
	}

	now := c.clock.Now()
	sess.Shots = append(sess.Shots, model.ShotRecord{
		Shooter:  shooter,
		Target:   pos,
		Outcome:  outcome,
		FiredAt:  now,
		TurnStep: len(sess.Shots) + 1,
	})
	sess.UpdatedAt = now

	c.logger.Debug("shot fired",
		slog.String("session_id", string(id)),
		slog.String("shooter", shooter.String()),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.String("result", string(outcome.Result)),
	)

	if outcome.Sunk {
		c.logger.Info("ship sunk",
			slog.String("session_id", string(id)),
			slog.String("owner", target.String()),
			slog.Int("length", outcome.SunkLength),
		)
	}

	if outcome.Defeated {
		winner := shooter
		sess.State = model.SessionStateFinished
		sess.Winner = &winner
		c.logger.Info("session finished",
			slog.String("session_id", string(id)),
			slog.String("winner", winner.String()),
			slog.Int("total_shots", len(sess.Shots)),
		)
	} else {
		sess.Turn = target
	}

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return model.FireOutcome{}, err
	}

	return outcome, nil
}

// AbandonGame ends a session prematurely
func (c *Controller) AbandonGame(ctx context.Context, id model.SessionID) error {
	sess, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return err
	}

	if sess.IsOver() {
		return nil // Already finished
	}

	sess.State = model.SessionStateAbandoned
	sess.UpdatedAt = c.clock.Now()

	c.logger.Info("session abandoned",
		slog.String("session_id", string(id)),
		slog.Int("total_shots", len(sess.Shots)),
	)

	return c.storage.SaveSession(ctx, sess)
}

// EndSession removes a session from the registry
func (c *Controller) EndSession(ctx context.Context, id model.SessionID) error {
	if _, err := c.storage.GetSession(ctx, id); err != nil {
		return err
	}
	return c.storage.DeleteSession(ctx, id)
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, mode model.GameMode, size int, fleet model.Fleet) (*model.Session, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	TakeTurn(ctx context.Context, id model.SessionID, shooter model.Side, pos model.Position) (model.FireOutcome, error)
	AbandonGame(ctx context.Context, id model.SessionID) error
	EndSession(ctx context.Context, id model.SessionID) error
}

var _ ControllerInterface = (*Controller)(nil)
