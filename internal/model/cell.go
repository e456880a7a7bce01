package model

import "fmt"

// MaxShipLength is the longest ship a cell can describe
const MaxShipLength = 5

// CellKind identifies which variant a Cell holds
type CellKind uint8

const (
	CellWater    CellKind = iota // Untouched empty cell
	CellShip                     // Intact ship segment
	CellHitShip                  // Ship segment that has been fired upon
	CellHitWater                 // Empty cell that has been fired upon
)

// String returns the lowercase name of the kind
func (k CellKind) String() string {
	switch k {
	case CellWater:
		return "water"
	case CellShip:
		return "ship"
	case CellHitShip:
		return "hit_ship"
	case CellHitWater:
		return "hit_water"
	default:
		return fmt.Sprintf("cell_kind(%d)", uint8(k))
	}
}

// Cell is the value held by one board square.
// The zero value is Water.
type Cell struct {
	kind CellKind
	size int // total ship length, only set for CellShip
}

// Water returns an untouched empty cell
func Water() Cell {
	return Cell{kind: CellWater}
}

// Ship returns an intact segment of a ship of the given total length.
// Panics if size is outside [1, MaxShipLength].
func Ship(size int) Cell {
	if size < 1 || size > MaxShipLength {
		panic(fmt.Sprintf("model: ship size %d out of range [1,%d]", size, MaxShipLength))
	}
	return Cell{kind: CellShip, size: size}
}

// HitShip returns a ship segment that has been fired upon
func HitShip() Cell {
	return Cell{kind: CellHitShip}
}

// HitWater returns an empty cell that has been fired upon
func HitWater() Cell {
	return Cell{kind: CellHitWater}
}

// Kind returns the variant of the cell
func (c Cell) Kind() CellKind {
	return c.kind
}

// ShipSize returns the total length of the ship an intact segment belongs to,
// or 0 for any other cell
func (c Cell) ShipSize() int {
	return c.size
}

// IsWater reports whether the cell is untouched water
func (c Cell) IsWater() bool {
	return c.kind == CellWater
}

// IsIntactShip reports whether the cell is a ship segment not yet hit
func (c Cell) IsIntactShip() bool {
	return c.kind == CellShip
}

// IsFired reports whether a shot has already landed on the cell
func (c Cell) IsFired() bool {
	return c.kind == CellHitShip || c.kind == CellHitWater
}

// String renders the cell for logs and test failures
func (c Cell) String() string {
	if c.kind == CellShip {
		return fmt.Sprintf("ship(%d)", c.size)
	}
	return c.kind.String()
}
