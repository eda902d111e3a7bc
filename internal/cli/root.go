// Package cli implements the command-line interface for reorient.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/reorient/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	settings   = config.New()
)

// rootCmd is the base command. Without a subcommand it runs the
// interactive prompt.
var rootCmd = &cobra.Command{
	Use:   "reorient",
	Short: "Find where to reorient during a rotationless algorithm",
	Long: `reorient searches for the fewest whole-cube rotations to insert into a
rotationless Rubik's cube algorithm so that it still ends within one move
of solved, and ranks the results by execution turn metric (ETM).

Run without arguments for an interactive prompt, or use one of the
subcommands below.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runInteractive,
}

// Execute runs the root command. Ctrl+C cancels a running search.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ~/.reorient/config.yaml)")
	flags.IntP("depth", "d", 2, "Pruning table depth (at least 2)")
	flags.BoolP("stickers", "s", false, "Print reorientations in sticker notation")
	flags.BoolP("all", "a", false, "Print all STM-optimal solutions, not only the ETM-optimal ones")
	flags.StringSliceP("cheap-moves", "c", nil, "Reorientations that count as 1 ETM, e.g. x,y2")
	flags.IntP("max-depth", "m", 3, "Maximum number of reorientations to search")
	flags.String("db", "", "Database file path (default: ~/.reorient/reorient.db)")
	flags.Bool("no-history", false, "Do not record searches")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
}

// setup loads settings for every command and stores them on its context.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.BindFlags(settings, cmd.Flags()); err != nil {
		return err
	}

	s, err := config.Load(settings, configPath)
	if err != nil {
		return err
	}

	a, err := newApp(s)
	if err != nil {
		return err
	}
	cmd.SetContext(withApp(cmd.Context(), a))
	return nil
}
