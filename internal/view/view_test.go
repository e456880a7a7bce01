package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/battleship-go/internal/model"
)

func TestVisible(t *testing.T) {
	tests := []struct {
		name     string
		cell     model.Cell
		self     Mark
		opponent Mark
	}{
		{"water", model.Water(), MarkWater, MarkWater},
		{"intact ship", model.Ship(4), MarkShip, MarkWater},
		{"hit ship", model.HitShip(), MarkHit, MarkHit},
		{"hit water", model.HitWater(), MarkMiss, MarkMiss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.self, Visible(tt.cell, Self))
			assert.Equal(t, tt.opponent, Visible(tt.cell, Opponent))
		})
	}
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "w", Glyph(model.Water(), Self))
	assert.Equal(t, "b", Glyph(model.Ship(1), Self))
	assert.Equal(t, "x", Glyph(model.HitShip(), Self))
	assert.Equal(t, "o", Glyph(model.HitWater(), Self))

	assert.Equal(t, "~", Glyph(model.Water(), Opponent))
	assert.Equal(t, "~", Glyph(model.Ship(5), Opponent))
	assert.Equal(t, "X", Glyph(model.HitShip(), Opponent))
	assert.Equal(t, "O", Glyph(model.HitWater(), Opponent))
}

func TestRowsHideShipsFromOpponent(t *testing.T) {
	board := model.NewBoard(3)
	board.Set(model.Position{Row: 0, Col: 0}, model.Ship(2))
	board.Set(model.Position{Row: 0, Col: 1}, model.HitShip())
	board.Set(model.Position{Row: 2, Col: 2}, model.HitWater())

	assert.Equal(t, []string{"b x w", "w w w", "w w o"}, Rows(board, Self))
	assert.Equal(t, []string{"~ X ~", "~ ~ ~", "~ ~ O"}, Rows(board, Opponent))
}
