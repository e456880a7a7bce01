package bot

import (
	"fmt"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// StrategyRandom is the name of the uniform random strategy
const StrategyRandom = "random"

// Strategy defines how a computer player picks where to shoot
type Strategy interface {
	// ChooseTarget selects a cell of the opponent's board to fire at
	ChooseTarget(board *model.Board) (model.Position, error)
}

// NewStrategy builds the named strategy. An empty name selects StrategyRandom.
func NewStrategy(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case "", StrategyRandom:
		return NewRandomStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownBotStrategy, name)
	}
}
