package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/view"
)

func newGenerateCmd() *cobra.Command {
	var hidden bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and print a random board",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.Generator.Generate(app.BoardSize, app.Fleet)
			if err != nil {
				return err
			}

			perspective := view.Self
			if hidden {
				perspective = view.Opponent
			}

			newOutput(cmd).Print(GeneratedBoard{
				Size:      board.Size,
				ShipCells: board.IntactShipCells(),
				Hidden:    hidden,
				Rows:      view.Rows(board, perspective),
				board:     board,
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "Show the board as the opponent sees it")

	return cmd
}
