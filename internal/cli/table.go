package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/reorient/internal/storage"
)

var tableRebuild bool

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Build or load the pruning table and print its statistics",
	Long: `Prepare the pruning table of the configured depth. The table is cached in
the database so later runs start faster; --rebuild ignores the cache.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().BoolVar(&tableRebuild, "rebuild", false, "Rebuild even if a cached table exists")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd.Context())

	db := a.openDB()
	if db != nil {
		defer db.Close()
	}

	table, err := a.loadTable(db, tableRebuild)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Depth:  %d\n", table.Depth())
	fmt.Fprintf(out, "States: %d\n", table.Len())
	for d, n := range table.Histogram() {
		fmt.Fprintf(out, "  distance %d: %d\n", d, n)
	}

	if db != nil {
		if info, err := storage.NewTableRepository(db).Info(table.Depth()); err == nil {
			fmt.Fprintf(out, "Cached: %s (%s)\n", db.Path(), info.BuiltAt.Local().Format("2006-01-02 15:04:05"))
		}
	}
	return nil
}
