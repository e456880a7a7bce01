// Package combat resolves shots against a board and detects sunk ships.
package combat

import "github.com/mcoot/battleship-go/internal/model"

// Shoot fires at pos and mutates the cell at most once:
// water becomes hit water, an intact ship segment becomes a hit segment.
// Cells already fired upon and positions off the board are left untouched.
//
// The caller owns the remaining-cells counter and must decrement it once per
// ShotHit.
func Shoot(board *model.Board, pos model.Position) model.ShotResult {
	if !board.IsValidPosition(pos) {
		return model.ShotOutOfBounds
	}

	switch cell := board.At(pos); cell.Kind() {
	case model.CellWater:
		board.Set(pos, model.HitWater())
		return model.ShotMiss
	case model.CellShip:
		board.Set(pos, model.HitShip())
		return model.ShotHit
	default:
		return model.ShotRepeat
	}
}
