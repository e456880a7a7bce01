// Package view decides what each player may see of a board.
package view

import (
	"strings"

	"github.com/mcoot/battleship-go/internal/model"
)

// Perspective is whose eyes a board is shown through
type Perspective int

const (
	// Self is the owner's view: intact ships are shown
	Self Perspective = iota
	// Opponent is the rival's view: intact ships look like water
	Opponent
)

// Mark is what a viewer sees in one cell
type Mark int

const (
	MarkWater Mark = iota
	MarkShip
	MarkHit
	MarkMiss
)

var glyphs = map[Perspective][4]string{
	Self:     {"w", "b", "x", "o"},
	Opponent: {"~", "~", "X", "O"},
}

// Visible returns the mark a cell shows from the given perspective
func Visible(cell model.Cell, p Perspective) Mark {
	switch cell.Kind() {
	case model.CellShip:
		if p == Opponent {
			return MarkWater
		}
		return MarkShip
	case model.CellHitShip:
		return MarkHit
	case model.CellHitWater:
		return MarkMiss
	default:
		return MarkWater
	}
}

// Glyph returns the single-character symbol for a mark
func (m Mark) Glyph(p Perspective) string {
	return glyphs[p][m]
}

// Glyph returns the symbol a cell shows from the given perspective
func Glyph(cell model.Cell, p Perspective) string {
	return Visible(cell, p).Glyph(p)
}

// Marks returns the visible grid of a board, row by row
func Marks(board *model.Board, p Perspective) [][]Mark {
	marks := make([][]Mark, board.Size)
	for row := range marks {
		marks[row] = make([]Mark, board.Size)
		for col := range marks[row] {
			marks[row][col] = Visible(board.At(model.Position{Row: row, Col: col}), p)
		}
	}
	return marks
}

// Rows renders each board row as space-separated glyphs
func Rows(board *model.Board, p Perspective) []string {
	rows := make([]string, 0, board.Size)
	for _, line := range Marks(board, p) {
		symbols := make([]string, len(line))
		for i, m := range line {
			symbols[i] = m.Glyph(p)
		}
		rows = append(rows, strings.Join(symbols, " "))
	}
	return rows
}
