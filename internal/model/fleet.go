package model

import (
	"fmt"
	"sort"
)

// ShipClass describes how many ships of one length a fleet contains
type ShipClass struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
	Count  int    `json:"count"`
}

// Fleet is the ordered list of ship classes placed on each board
type Fleet []ShipClass

// StandardFleet returns the 5-4-3-2-1 fleet of the classic game (35 cells)
func StandardFleet() Fleet {
	return Fleet{
		{Name: "patrol boat", Length: 1, Count: 5},
		{Name: "cruiser", Length: 2, Count: 4},
		{Name: "submarine", Length: 3, Count: 3},
		{Name: "battleship", Length: 4, Count: 2},
		{Name: "carrier", Length: 5, Count: 1},
	}
}

// TotalCells returns the number of board cells the fleet occupies
func (f Fleet) TotalCells() int {
	total := 0
	for _, c := range f {
		total += c.Length * c.Count
	}
	return total
}

// ShipCount returns the number of individual ships in the fleet
func (f Fleet) ShipCount() int {
	total := 0
	for _, c := range f {
		total += c.Count
	}
	return total
}

// LargestFirst returns a copy of the fleet ordered by descending length
func (f Fleet) LargestFirst() Fleet {
	sorted := make(Fleet, len(f))
	copy(sorted, f)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Length > sorted[j].Length
	})
	return sorted
}

// ClassForLength returns the ship class with the given length
func (f Fleet) ClassForLength(length int) (ShipClass, bool) {
	for _, c := range f {
		if c.Length == length {
			return c, true
		}
	}
	return ShipClass{}, false
}

// Validate checks the fleet can be placed on a board of the given size.
//
// Besides per-class checks it applies a packing bound: with the one-cell
// buffer, a ship of length L claims a disjoint 2×(L+1) block of the board
// padded by one row and column, so the blocks must fit in (size+1)².
// Passing the bound does not guarantee placement; the generator's restart
// limit covers the rest.
func (f Fleet) Validate(boardSize int) error {
	if boardSize < 1 {
		return fmt.Errorf("%w: board size %d", ErrInvalidFleet, boardSize)
	}
	if f.ShipCount() == 0 {
		return fmt.Errorf("%w: fleet has no ships", ErrInvalidFleet)
	}

	seen := make(map[int]bool, len(f))
	claimed := 0
	for _, c := range f {
		if c.Length < 1 || c.Length > MaxShipLength {
			return fmt.Errorf("%w: ship length %d out of range [1,%d]", ErrInvalidFleet, c.Length, MaxShipLength)
		}
		if c.Length > boardSize {
			return fmt.Errorf("%w: ship length %d exceeds board size %d", ErrInvalidFleet, c.Length, boardSize)
		}
		if c.Count < 0 {
			return fmt.Errorf("%w: negative count for length %d", ErrInvalidFleet, c.Length)
		}
		if seen[c.Length] {
			return fmt.Errorf("%w: duplicate ship length %d", ErrInvalidFleet, c.Length)
		}
		seen[c.Length] = true
		claimed += c.Count * 2 * (c.Length + 1)
	}

	if capacity := (boardSize + 1) * (boardSize + 1); claimed > capacity {
		return fmt.Errorf("%w: fleet needs %d of %d padded cells", ErrFleetTooDense, claimed, capacity)
	}
	return nil
}
