package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "battleship",
		Short: "Battleship on the console",
		Long: `battleship plays the classic naval game on the console.

Each side hides a fleet of 15 ships (35 cells) on a 10x10 board. Ships never
touch, not even diagonally. Players take turns firing at the rival board
until one fleet is gone.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			var err error
			app, err = factory.New(factory.Config{
				Logger: cfg.Logger(cmd.ErrOrStderr()),
				Seed:   cfg.Seed,
			})
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for unpredictable games (env: BATTLESHIP_SEED)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: BATTLESHIP_OUTPUT)")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured output (env: BATTLESHIP_NO_COLOR)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging (env: BATTLESHIP_VERBOSE)")

	// Add subcommands
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	// .env values only fill variables the environment does not already set
	if err := loadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading .env: %s\n", err)
		os.Exit(1)
	}
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newOutput keeps stdout parseable in JSON mode by moving console text to stderr
func newOutput(cmd *cobra.Command) *Output {
	out := NewOutput(cfg.Output, cmd.OutOrStdout(), !cfg.NoColor)
	if out.IsJSON() {
		out.WithConsole(cmd.ErrOrStderr())
	}
	return out
}
