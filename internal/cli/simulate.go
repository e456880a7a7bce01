package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/model"
)

func newSimulateCmd() *cobra.Command {
	var games int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play computer against computer and report the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("--games must be at least 1, got %d", games)
			}

			ctx := cmd.Context()
			result := SimulationResult{Games: games}
			for range games {
				sess, err := app.SessionController.NewGame(ctx, model.GameModePVP, app.BoardSize, app.Fleet)
				if err != nil {
					return err
				}
				if _, err := app.BotService.PlayOut(ctx, sess.ID); err != nil {
					return err
				}

				final, err := app.SessionController.GetSession(ctx, sess.ID)
				if err != nil {
					return err
				}
				if final.Winner == nil {
					return fmt.Errorf("game %s ended without a winner", final.ID)
				}
				if *final.Winner == model.PlayerOne {
					result.PlayerOneWins++
				} else {
					result.PlayerTwoWins++
				}
				result.TotalShots += len(final.Shots)

				if err := app.SessionController.EndSession(ctx, sess.ID); err != nil {
					return err
				}
			}
			result.AverageShots = float64(result.TotalShots) / float64(games)

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 1, "Number of games to play")

	return cmd
}
