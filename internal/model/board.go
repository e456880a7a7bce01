package model

// DefaultBoardSize is the grid dimension used by the standard game
const DefaultBoardSize = 10

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Add returns the position offset by the given deltas
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Board is one side's grid of cells
type Board struct {
	Size  int
	Cells [][]Cell // Row-major: Cells[row][col]
}

// NewBoard creates a board of the given size filled with water
func NewBoard(size int) *Board {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// At returns the cell at the given position, or Water if out of bounds
func (b *Board) At(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return Water()
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set stores a cell at the given position; out of bounds writes are ignored
func (b *Board) Set(pos Position, cell Cell) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = cell
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// Clone returns a deep copy sharing no storage with b
func (b *Board) Clone() *Board {
	clone := &Board{
		Size:  b.Size,
		Cells: make([][]Cell, len(b.Cells)),
	}
	for i, row := range b.Cells {
		clone.Cells[i] = make([]Cell, len(row))
		copy(clone.Cells[i], row)
	}
	return clone
}

// Count returns the number of cells matching the predicate
func (b *Board) Count(match func(Cell) bool) int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if match(b.Cells[row][col]) {
				count++
			}
		}
	}
	return count
}

// IntactShipCells returns the number of ship segments not yet hit
func (b *Board) IntactShipCells() int {
	return b.Count(Cell.IsIntactShip)
}

// Positions returns every position whose cell matches the predicate,
// in row-major order
func (b *Board) Positions(match func(Cell) bool) []Position {
	var result []Position
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if match(b.Cells[row][col]) {
				result = append(result, Position{Row: row, Col: col})
			}
		}
	}
	return result
}
