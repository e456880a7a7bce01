package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/session"
)

// Shot is one shot taken by a computer player
type Shot struct {
	Shooter model.Side        `json:"shooter"`
	Target  model.Position    `json:"target"`
	Outcome model.FireOutcome `json:"outcome"`
}

// Service plays turns on behalf of computer-controlled sides
type Service struct {
	sessions session.ControllerInterface
	strategy Strategy
	logger   *slog.Logger
}

// NewService creates a new bot Service
func NewService(sessions session.ControllerInterface, strategy Strategy, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		strategy: strategy,
		logger:   logger.With(slog.String("component", "bot-service")),
	}
}

// PlayTurn chooses a target on the opponent's board and fires at it for side
func (s *Service) PlayTurn(ctx context.Context, id model.SessionID, side model.Side) (Shot, error) {
	if !side.Valid() {
		return Shot{}, fmt.Errorf("%w: %d", model.ErrInvalidSide, int(side))
	}

	sess, err := s.sessions.GetSession(ctx, id)
	if err != nil {
		return Shot{}, err
	}

	target, err := s.strategy.ChooseTarget(sess.Board(side.Opponent()))
	if err != nil {
		return Shot{}, err
	}

	outcome, err := s.sessions.TakeTurn(ctx, id, side, target)
	if err != nil {
		return Shot{}, err
	}

	s.logger.Debug("bot fired",
		slog.String("session_id", string(id)),
		slog.String("side", side.String()),
		slog.Int("row", target.Row),
		slog.Int("col", target.Col),
		slog.String("result", string(outcome.Result)),
	)

	return Shot{Shooter: side, Target: target, Outcome: outcome}, nil
}

// PlayComputerTurns plays while the side to move is computer-controlled in
// the session's mode, stopping at a human's turn or the end of the session
func (s *Service) PlayComputerTurns(ctx context.Context, id model.SessionID) ([]Shot, error) {
	return s.play(ctx, id, func(sess *model.Session) bool {
		return sess.Mode.IsComputer(sess.Turn)
	})
}

// PlayOut plays both sides until the session is over
func (s *Service) PlayOut(ctx context.Context, id model.SessionID) ([]Shot, error) {
	return s.play(ctx, id, func(*model.Session) bool { return true })
}

func (s *Service) play(ctx context.Context, id model.SessionID, shouldPlay func(*model.Session) bool) ([]Shot, error) {
	var shots []Shot

	sess, err := s.sessions.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	// Each side has one untried cell fewer after every shot
	maxTurns := 2 * sess.Board(model.PlayerOne).Size * sess.Board(model.PlayerOne).Size

	for range maxTurns {
		if sess.IsOver() || !shouldPlay(sess) {
			return shots, nil
		}

		shot, err := s.PlayTurn(ctx, id, sess.Turn)
		if err != nil {
			return shots, err
		}
		shots = append(shots, shot)

		sess, err = s.sessions.GetSession(ctx, id)
		if err != nil {
			return shots, err
		}
	}

	if !sess.IsOver() && shouldPlay(sess) {
		return shots, model.ErrNoTargetAvailable
	}
	return shots, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	PlayTurn(ctx context.Context, id model.SessionID, side model.Side) (Shot, error)
	PlayComputerTurns(ctx context.Context, id model.SessionID) ([]Shot, error)
	PlayOut(ctx context.Context, id model.SessionID) ([]Shot, error)
}

var _ ServiceInterface = (*Service)(nil)
