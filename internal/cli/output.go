package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/view"
)

// Output handles formatting output based on the configured format.
// Results go to w; console text goes to console, which is w unless set apart.
type Output struct {
	format  string
	w       io.Writer
	console io.Writer
	color   bool
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer, useColor bool) *Output {
	return &Output{format: format, w: w, console: w, color: useColor}
}

// WithConsole sends console text to w, keeping results on the original writer
func (o *Output) WithConsole(w io.Writer) *Output {
	o.console = w
	return o
}

// IsJSON reports whether results are printed as JSON
func (o *Output) IsJSON() bool {
	return o.format == OutputJSON
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// Println writes a plain line of console text
func (o *Output) Println(a ...any) {
	fmt.Fprintln(o.console, a...)
}

// Printf writes formatted console text
func (o *Output) Printf(format string, a ...any) {
	fmt.Fprintf(o.console, format, a...)
}

// Say writes a line of console text in the given colour
func (o *Output) Say(attr color.Attribute, msg string) {
	fmt.Fprintln(o.console, o.paint(attr, msg))
}

func (o *Output) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if !o.color {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GeneratedBoard:
		o.printGeneratedBoard(v)
	case GameSummary:
		o.printGameSummary(v)
	case SimulationResult:
		o.printSimulationResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GeneratedBoard is the result of the generate command
type GeneratedBoard struct {
	Size      int      `json:"size"`
	ShipCells int      `json:"ship_cells"`
	Hidden    bool     `json:"hidden"`
	Rows      []string `json:"rows"`

	board *model.Board
}

// GameSummary is printed when an interactive game ends
type GameSummary struct {
	SessionID string         `json:"session_id"`
	Mode      model.GameMode `json:"mode"`
	Winner    model.Side     `json:"winner"`
	Shots     map[string]int `json:"shots"`
	Remaining map[string]int `json:"remaining"`
}

// SimulationResult is the result of the simulate command
type SimulationResult struct {
	Games         int     `json:"games"`
	PlayerOneWins int     `json:"player1_wins"`
	PlayerTwoWins int     `json:"player2_wins"`
	TotalShots    int     `json:"total_shots"`
	AverageShots  float64 `json:"average_shots"`
}

func (o *Output) printGeneratedBoard(g GeneratedBoard) {
	o.Printf("Generated board (%dx%d, %d ship cells):\n", g.Size, g.Size, g.ShipCells)
	perspective := view.Self
	if g.Hidden {
		perspective = view.Opponent
	}
	o.PrintBoard("", g.board, perspective)
}

func (o *Output) printGameSummary(s GameSummary) {
	o.Printf("Game: %s (%s)\n", s.SessionID, s.Mode)
	o.Printf("Winner: %s\n", s.Winner)
	for _, side := range model.Sides {
		o.Printf("  %s: %d shots, %d ship cells left\n", side, s.Shots[side.String()], s.Remaining[side.String()])
	}
}

func (o *Output) printSimulationResult(r SimulationResult) {
	o.Printf("Games played: %d\n", r.Games)
	o.Printf("Player 1 wins: %d\n", r.PlayerOneWins)
	o.Printf("Player 2 wins: %d\n", r.PlayerTwoWins)
	o.Printf("Average shots per game: %.1f\n", r.AverageShots)
}
