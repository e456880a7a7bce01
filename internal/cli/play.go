package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/view"
)

var errInputClosed = errors.New("input closed before the game finished")

func newPlayCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game on the console",
		Long: `Play Battleship on the console. Shots are entered as a row then a column,
separated by spaces or newlines.

Without --mode a menu offers player vs player, player vs computer, or exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newConsole(cmd.InOrStdin(), newOutput(cmd))
			if mode != "" {
				return c.playGame(cmd.Context(), model.GameMode(mode))
			}
			return c.menu(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Game mode: pvp, pve (default: choose from a menu)")

	return cmd
}

// console runs games against stdin and stdout.
// Menu choices are whole lines; shot coordinates are words and may span lines.
type console struct {
	in    *bufio.Scanner
	words []string
	out   *Output
}

func newConsole(r io.Reader, out *Output) *console {
	return &console{in: bufio.NewScanner(r), out: out}
}

// readLine drops any words left over from the current line
func (c *console) readLine() (string, bool) {
	c.words = nil
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *console) readWord() (string, bool) {
	for len(c.words) == 0 {
		if !c.in.Scan() {
			return "", false
		}
		c.words = strings.Fields(c.in.Text())
	}
	word := c.words[0]
	c.words = c.words[1:]
	return word, true
}

func (c *console) menu(ctx context.Context) error {
	for {
		c.out.Println("\n--- BATTLESHIP ---")
		c.out.Println("1. Player vs Player (PVP)")
		c.out.Println("2. Player vs Computer (PVE)")
		c.out.Println("0. Exit")
		c.out.Printf("Choose an option: ")

		choice, ok := c.readLine()
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = c.playGame(ctx, model.GameModePVP)
		case "2":
			err = c.playGame(ctx, model.GameModePVE)
		case "0":
			c.out.Println("Exiting.")
			return nil
		default:
			c.out.Println("Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *console) playGame(ctx context.Context, mode model.GameMode) error {
	sess, err := app.SessionController.NewGame(ctx, mode, app.BoardSize, app.Fleet)
	if err != nil {
		return err
	}

	c.out.Printf("\n--- %s GAME STARTED ---\n", strings.ToUpper(string(mode)))

	for !sess.IsOver() {
		if sess.Mode.IsComputer(sess.Turn) {
			shots, err := app.BotService.PlayComputerTurns(ctx, sess.ID)
			if err != nil {
				return err
			}
			for _, shot := range shots {
				c.reportComputerShot(shot)
			}
		} else if err := c.humanTurn(ctx, sess); err != nil {
			return err
		}

		sess, err = app.SessionController.GetSession(ctx, sess.ID)
		if err != nil {
			return err
		}
	}

	c.out.Say(color.FgGreen, fmt.Sprintf("\n%s WINS!", sideName(sess.Mode, *sess.Winner)))
	c.out.Print(summarize(sess))

	return app.SessionController.EndSession(ctx, sess.ID)
}

func (c *console) humanTurn(ctx context.Context, sess *model.Session) error {
	side := sess.Turn
	rival := side.Opponent()

	c.out.Printf("\n>> %s'S TURN\n", sideName(sess.Mode, side))
	c.out.PrintBoard(fmt.Sprintf("YOUR BOARD (%s)", sideName(sess.Mode, side)), sess.Board(side), view.Self)
	c.out.PrintBoard(fmt.Sprintf("RIVAL BOARD (%s)", sideName(sess.Mode, rival)), sess.Board(rival), view.Opponent)

	pos, err := c.readPosition()
	if err != nil {
		if abandonErr := app.SessionController.AbandonGame(ctx, sess.ID); abandonErr != nil {
			return errors.Join(err, abandonErr)
		}
		return err
	}

	outcome, err := app.SessionController.TakeTurn(ctx, sess.ID, side, pos)
	if err != nil {
		return err
	}

	switch outcome.Result {
	case model.ShotHit:
		c.out.Say(color.FgGreen, "Hit!")
		if outcome.Sunk {
			c.out.Say(color.FgRed, fmt.Sprintf("Sunk! You sank a %s.", shipName(outcome.SunkLength)))
		}
	case model.ShotMiss:
		c.out.Say(color.FgBlue, "Water...")
	case model.ShotRepeat:
		c.out.Println("You already fired there.")
	case model.ShotOutOfBounds:
		c.out.Println("Shot out of range.")
	}
	return nil
}

// readPosition reads a row then a column. A word that is not a number is
// dropped and the pair starts over.
func (c *console) readPosition() (model.Position, error) {
	c.out.Println("Enter shot coordinates (row col):")
	for {
		row, ok, err := c.readCoordinate()
		if err != nil {
			return model.Position{}, err
		}
		if !ok {
			c.out.Println("Invalid input. Enter row and column (numbers):")
			continue
		}
		col, ok, err := c.readCoordinate()
		if err != nil {
			return model.Position{}, err
		}
		if !ok {
			c.out.Println("Invalid column. Enter row and column (numbers):")
			continue
		}
		return model.Position{Row: row, Col: col}, nil
	}
}

func (c *console) readCoordinate() (int, bool, error) {
	word, ok := c.readWord()
	if !ok {
		return 0, false, errInputClosed
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (c *console) reportComputerShot(shot bot.Shot) {
	c.out.Printf("\n>> COMPUTER'S TURN\n")
	c.out.Printf("The computer fires at %d %d\n", shot.Target.Row, shot.Target.Col)
	switch shot.Outcome.Result {
	case model.ShotHit:
		c.out.Say(color.FgRed, "You've been hit!")
		if shot.Outcome.Sunk {
			c.out.Say(color.FgRed, fmt.Sprintf("The computer sank your %s!", shipName(shot.Outcome.SunkLength)))
		}
	default:
		c.out.Say(color.FgBlue, "The computer missed.")
	}
}

func sideName(mode model.GameMode, side model.Side) string {
	if mode.IsComputer(side) {
		return "COMPUTER"
	}
	if side == model.PlayerOne {
		return "PLAYER 1"
	}
	return "PLAYER 2"
}

func shipName(length int) string {
	if class, ok := app.Fleet.ClassForLength(length); ok {
		return class.Name
	}
	return fmt.Sprintf("%d-cell ship", length)
}

func summarize(sess *model.Session) GameSummary {
	summary := GameSummary{
		SessionID: string(sess.ID),
		Mode:      sess.Mode,
		Winner:    *sess.Winner,
		Shots:     make(map[string]int, len(model.Sides)),
		Remaining: make(map[string]int, len(model.Sides)),
	}
	for _, side := range model.Sides {
		summary.Shots[side.String()] = sess.ShotsBy(side)
		summary.Remaining[side.String()] = sess.Remaining[side]
	}
	return summary
}
