package placement

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/testutil"
)

type GeneratorSuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

func (s *GeneratorSuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
}

func (s *GeneratorSuite) newGenerator(rnd random.Random, cfg Config) *Generator {
	return New(rnd, cfg, testutil.NopLogger())
}

// Standard fleet properties, checked across many seeds

func (s *GeneratorSuite) TestStandardFleetShipCellCount() {
	fleet := model.StandardFleet()
	for seed := uint64(1); seed <= 200; seed++ {
		gen := s.newGenerator(random.NewSeeded(seed), DefaultConfig())
		board, err := gen.Generate(model.DefaultBoardSize, fleet)
		s.Require().NoError(err, "seed %d", seed)
		s.Equal(35, board.IntactShipCells(), "seed %d", seed)
	}
}

func (s *GeneratorSuite) TestStandardFleetShipsAreSeparated() {
	fleet := model.StandardFleet()
	for seed := uint64(1); seed <= 200; seed++ {
		gen := s.newGenerator(random.NewSeeded(seed), DefaultConfig())
		board, err := gen.Generate(model.DefaultBoardSize, fleet)
		s.Require().NoError(err, "seed %d", seed)
		s.assertValidLayout(board, fleet)
	}
}

func (s *GeneratorSuite) TestSameSeedSameBoard() {
	a, err := s.newGenerator(random.NewSeeded(99), DefaultConfig()).Generate(10, model.StandardFleet())
	s.Require().NoError(err)
	b, err := s.newGenerator(random.NewSeeded(99), DefaultConfig()).Generate(10, model.StandardFleet())
	s.Require().NoError(err)
	s.Equal(a, b)
}

// Deterministic placement through the mock

func (s *GeneratorSuite) TestChoosesAmongViableOrientations() {
	// Origin (0,0): up and left leave the board, so only right and down are viable.
	// Index 1 of [right, down] selects down.
	s.mockRandom.QueueIntn(0, 0, 1)
	gen := s.newGenerator(s.mockRandom, DefaultConfig())

	board, err := gen.Generate(10, model.Fleet{{Length: 3, Count: 1}})
	s.Require().NoError(err)

	s.Equal([]int{10, 10, 2}, s.mockRandom.Calls)
	s.Equal(
		[]model.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
		board.Positions(model.Cell.IsIntactShip),
	)
	s.Equal(model.Ship(3), board.At(model.Position{Row: 2, Col: 0}))
}

func (s *GeneratorSuite) TestSingleCellShipSkipsOrientationDraw() {
	s.mockRandom.QueueIntn(4, 7)
	gen := s.newGenerator(s.mockRandom, DefaultConfig())

	board, err := gen.Generate(10, model.Fleet{{Length: 1, Count: 1}})
	s.Require().NoError(err)

	s.Equal([]int{10, 10}, s.mockRandom.Calls)
	s.Equal(model.Ship(1), board.At(model.Position{Row: 4, Col: 7}))
}

func (s *GeneratorSuite) TestRedrawsIllegalOrigin() {
	// First ship at (1,1); second ship's first origin (0,1) touches it, (3,3) is fine
	s.mockRandom.QueueIntn(1, 1, 0, 1, 3, 3)
	gen := s.newGenerator(s.mockRandom, DefaultConfig())

	board, err := gen.Generate(5, model.Fleet{{Length: 1, Count: 2}})
	s.Require().NoError(err)

	s.Equal(
		[]model.Position{{Row: 1, Col: 1}, {Row: 3, Col: 3}},
		board.Positions(model.Cell.IsIntactShip),
	)
}

func (s *GeneratorSuite) TestRestartsWhenStarved() {
	// Layout 1: (1,1) blocks the whole 3x3 board; both origins for the
	// second ship fail and the layout is discarded.
	// Layout 2: corners (0,0) and (2,2).
	s.mockRandom.QueueIntn(1, 1, 0, 0, 2, 2, 0, 0, 2, 2)
	gen := s.newGenerator(s.mockRandom, Config{MaxOriginAttempts: 2, MaxRestarts: 1})

	board, err := gen.Generate(3, model.Fleet{{Length: 1, Count: 2}})
	s.Require().NoError(err)

	s.Equal(
		[]model.Position{{Row: 0, Col: 0}, {Row: 2, Col: 2}},
		board.Positions(model.Cell.IsIntactShip),
	)
	s.Zero(s.mockRandom.Remaining())
}

func (s *GeneratorSuite) TestGivesUpAfterMaxRestarts() {
	s.mockRandom.QueueIntn(1, 1, 0, 0, 2, 2)
	gen := s.newGenerator(s.mockRandom, Config{MaxOriginAttempts: 2, MaxRestarts: 0})

	_, err := gen.Generate(3, model.Fleet{{Length: 1, Count: 2}})
	s.ErrorIs(err, model.ErrPlacementStarved)
}

func (s *GeneratorSuite) TestRejectsInvalidFleet() {
	gen := s.newGenerator(s.mockRandom, DefaultConfig())

	_, err := gen.Generate(3, model.Fleet{{Length: 1, Count: 9}})
	s.ErrorIs(err, model.ErrFleetTooDense)

	_, err = gen.Generate(10, model.Fleet{{Length: 7, Count: 1}})
	s.ErrorIs(err, model.ErrInvalidFleet)
	s.Empty(s.mockRandom.Calls)
}

// Legality helpers

func (s *GeneratorSuite) TestIsLegal() {
	grid := model.NewBoard(5)
	grid.Set(model.Position{Row: 2, Col: 2}, model.Ship(1))

	s.False(IsLegal(grid, model.Position{Row: 2, Col: 2}))
	s.False(IsLegal(grid, model.Position{Row: 1, Col: 1}))
	s.False(IsLegal(grid, model.Position{Row: 3, Col: 2}))
	s.True(IsLegal(grid, model.Position{Row: 0, Col: 0}))
	s.True(IsLegal(grid, model.Position{Row: 4, Col: 4}))
	s.False(IsLegal(grid, model.Position{Row: 5, Col: 0}))
}

func (s *GeneratorSuite) TestViableOrientationsNearShip() {
	grid := model.NewBoard(5)
	grid.Set(model.Position{Row: 0, Col: 4}, model.Ship(1))

	// A length-3 ship ending at (0,2) keeps (0,3) as the buffer, so right fits
	viable := ViableOrientations(grid, model.Position{Row: 0, Col: 0}, 3)
	s.Equal([]model.Orientation{model.OrientationRight, model.OrientationDown}, viable)

	// Length 4 to the right would need (0,3), adjacent to the ship
	viable = ViableOrientations(grid, model.Position{Row: 0, Col: 0}, 4)
	s.Equal([]model.Orientation{model.OrientationDown}, viable)
}

// assertValidLayout checks the board holds exactly the fleet's ships, each a
// straight run of Ship(length) cells, and that no two ships touch, diagonals
// included
func (s *GeneratorSuite) assertValidLayout(board *model.Board, fleet model.Fleet) {
	shipID := make([][]int, board.Size)
	for i := range shipID {
		shipID[i] = make([]int, board.Size)
	}

	counts := make(map[int]int)
	next := 0
	for _, start := range board.Positions(model.Cell.IsIntactShip) {
		if shipID[start.Row][start.Col] != 0 {
			continue
		}
		next++
		cells := s.labelShip(board, shipID, start, next)

		length := board.At(start).ShipSize()
		s.Len(cells, length, "ship at %v", start)
		s.True(isStraight(cells), "ship at %v is not straight", start)
		for _, c := range cells {
			s.Equal(model.Ship(length), board.At(c))
		}
		counts[length]++
	}

	for _, class := range fleet {
		s.Equal(class.Count, counts[class.Length], "ships of length %d", class.Length)
	}

	for _, p := range board.Positions(model.Cell.IsIntactShip) {
		for dRow := -1; dRow <= 1; dRow++ {
			for dCol := -1; dCol <= 1; dCol++ {
				n := p.Add(dRow, dCol)
				if board.IsValidPosition(n) && board.At(n).IsIntactShip() {
					s.Equal(shipID[p.Row][p.Col], shipID[n.Row][n.Col], "ships touch at %v and %v", p, n)
				}
			}
		}
	}
}

func (s *GeneratorSuite) labelShip(board *model.Board, shipID [][]int, start model.Position, id int) []model.Position {
	var cells []model.Position
	stack := []model.Position{start}
	shipID[start.Row][start.Col] = id
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells = append(cells, p)
		for _, o := range model.Orientations {
			n := o.Step(p, 1)
			if board.IsValidPosition(n) && board.At(n).IsIntactShip() && shipID[n.Row][n.Col] == 0 {
				shipID[n.Row][n.Col] = id
				stack = append(stack, n)
			}
		}
	}
	return cells
}

func isStraight(cells []model.Position) bool {
	sameRow, sameCol := true, true
	for _, c := range cells[1:] {
		sameRow = sameRow && c.Row == cells[0].Row
		sameCol = sameCol && c.Col == cells[0].Col
	}
	return sameRow || sameCol
}
