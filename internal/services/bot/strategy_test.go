package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.RandomStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewRandomStrategy(s.mockRandom)
}

func (s *StrategySuite) TestChooseTarget_FreshBoard() {
	board := model.NewBoard(3)
	// 9 untried cells, random picks index 4
	s.mockRandom.QueueIntn(4)

	pos, err := s.strategy.ChooseTarget(board)
	s.Require().NoError(err)
	// Index 4 = (1, 1) in a 3x3 grid
	s.Equal(model.Position{Row: 1, Col: 1}, pos)
	s.Equal([]int{9}, s.mockRandom.Calls)
}

func (s *StrategySuite) TestChooseTarget_SkipsFiredCells() {
	board := model.NewBoard(2)
	board.Set(model.Position{Row: 0, Col: 0}, model.HitWater())
	board.Set(model.Position{Row: 0, Col: 1}, model.HitShip())
	// Intact ships are still untried
	board.Set(model.Position{Row: 1, Col: 0}, model.Ship(1))
	s.mockRandom.QueueIntn(1)

	pos, err := s.strategy.ChooseTarget(board)
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 1, Col: 1}, pos)
	s.Equal([]int{2}, s.mockRandom.Calls)
}

func (s *StrategySuite) TestChooseTarget_OnlyOneUntried() {
	board := model.NewBoard(2)
	board.Set(model.Position{Row: 0, Col: 0}, model.HitWater())
	board.Set(model.Position{Row: 1, Col: 0}, model.HitWater())
	board.Set(model.Position{Row: 1, Col: 1}, model.HitShip())
	s.mockRandom.QueueIntn(0)

	pos, err := s.strategy.ChooseTarget(board)
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 0, Col: 1}, pos)
}

func (s *StrategySuite) TestChooseTarget_NegativeRandomStaysOnBoard() {
	board := model.NewBoard(3)
	// -1 wraps to the last of the 9 untried cells
	s.mockRandom.QueueIntn(-1)

	pos, err := s.strategy.ChooseTarget(board)
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 2, Col: 2}, pos)
}

func (s *StrategySuite) TestChooseTarget_NothingLeft() {
	board := model.NewBoard(1)
	board.Set(model.Position{Row: 0, Col: 0}, model.HitShip())

	_, err := s.strategy.ChooseTarget(board)
	s.ErrorIs(err, model.ErrNoTargetAvailable)
	s.Empty(s.mockRandom.Calls)
}

func (s *StrategySuite) TestNewStrategy() {
	strategy, err := bot.NewStrategy(bot.StrategyRandom, s.mockRandom)
	s.Require().NoError(err)
	s.IsType(&bot.RandomStrategy{}, strategy)

	strategy, err = bot.NewStrategy("", s.mockRandom)
	s.Require().NoError(err)
	s.IsType(&bot.RandomStrategy{}, strategy)

	_, err = bot.NewStrategy("hunter", s.mockRandom)
	s.ErrorIs(err, model.ErrUnknownBotStrategy)
}
