package cli

import (
	"github.com/fatih/color"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/view"
)

var markColors = map[view.Mark]color.Attribute{
	view.MarkWater: color.FgBlue,
	view.MarkShip:  color.FgHiBlack,
	view.MarkHit:   color.FgRed,
	view.MarkMiss:  color.FgCyan,
}

// PrintBoard draws a board with row and column numbers.
// Intact ships only appear from the Self perspective.
func (o *Output) PrintBoard(title string, board *model.Board, p view.Perspective) {
	if title != "" {
		o.Printf("\n--- %s ---\n", title)
	}

	o.Printf("   ")
	for col := 0; col < board.Size; col++ {
		o.Printf("%d ", col)
	}
	o.Println()

	for row, line := range view.Marks(board, p) {
		o.Printf("%-3d", row)
		for _, m := range line {
			o.Printf("%s ", o.paint(markColors[m], m.Glyph(p)))
		}
		o.Println()
	}
}
