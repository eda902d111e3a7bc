package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/reorient"
)

var solveCmd = &cobra.Command{
	Use:   "solve <algorithm...>",
	Short: "Solve a single algorithm and exit",
	Long: `Search reorientations for one algorithm given on the command line.

Example:
  reorient solve "R U R' U'"
  reorient solve R U F --all`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd.Context())

	alg, err := reorient.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.solve(cmd.Context(), alg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), result.Report(a.settings.All))
	return nil
}
