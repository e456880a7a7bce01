package bot

import (
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// RandomStrategy fires at a uniformly chosen cell it has not tried yet
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseTarget picks a random cell not yet fired upon.
// Only the fired state is read, so intact ships stay hidden from the strategy.
func (s *RandomStrategy) ChooseTarget(board *model.Board) (model.Position, error) {
	untried := board.Positions(func(c model.Cell) bool { return !c.IsFired() })
	if len(untried) == 0 {
		return model.Position{}, model.ErrNoTargetAvailable
	}
	return untried[s.random.Intn(len(untried))], nil
}
