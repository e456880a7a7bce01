package combat

import "github.com/mcoot/battleship-go/internal/model"

// IsSunk reports whether the hit at pos finished off its ship: no intact ship
// segment is orthogonally adjacent to any hit segment reachable from pos
// through other hit segments. Call it right after Shoot returns ShotHit.
func IsSunk(board *model.Board, pos model.Position) bool {
	sunk, _ := floodHits(board, pos)
	return sunk
}

// SunkLength is IsSunk that also reports the length of the sunk ship.
// Ships never touch, so the hit component is exactly one ship.
func SunkLength(board *model.Board, pos model.Position) (int, bool) {
	sunk, size := floodHits(board, pos)
	if !sunk {
		return 0, false
	}
	return size, true
}

// floodHits walks the 4-connected component of hit segments containing pos.
// Off-board, already visited, water and hit-water cells bound the walk; an
// intact ship segment anywhere on the boundary ends it with false.
// The visited set belongs to this call.
func floodHits(board *model.Board, pos model.Position) (bool, int) {
	visited := make([][]bool, board.Size)
	for i := range visited {
		visited[i] = make([]bool, board.Size)
	}

	size := 0
	stack := []model.Position{pos}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !board.IsValidPosition(p) || visited[p.Row][p.Col] {
			continue
		}
		visited[p.Row][p.Col] = true

		switch board.At(p).Kind() {
		case model.CellShip:
			return false, 0
		case model.CellHitShip:
			size++
			for _, o := range model.Orientations {
				stack = append(stack, o.Step(p, 1))
			}
		}
	}
	return true, size
}
