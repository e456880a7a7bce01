package session

import (
	"fmt"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/combat"
)

// Fire shoots at the target side's board and updates that side's counter.
// A Hit decrements the counter and is checked for a sink; the side is
// defeated once its counter reaches zero. Misses, repeats and out-of-bounds
// shots change nothing but are still reported.
func Fire(sess *model.Session, target model.Side, pos model.Position) (model.FireOutcome, error) {
	board := sess.Board(target)
	if board == nil {
		return model.FireOutcome{}, fmt.Errorf("%w: %d", model.ErrInvalidSide, int(target))
	}

	outcome := model.FireOutcome{Result: combat.Shoot(board, pos)}
	if outcome.Result == model.ShotHit {
		sess.Remaining[target]--
		outcome.SunkLength, outcome.Sunk = combat.SunkLength(board, pos)
	}
	outcome.Remaining = sess.Remaining[target]
	outcome.Defeated = sess.Remaining[target] == 0
	return outcome, nil
}
