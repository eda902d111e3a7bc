package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/reorient/internal/config"
	"github.com/SeamusWaldron/reorient/internal/recorder"
	"github.com/SeamusWaldron/reorient/internal/storage"
)

var statusScan bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show settings, history, cached tables and device information",
	Long: `Display the effective settings, the search history and cached pruning
tables in the database, and the last smart cube used. With --scan, also
look for nearby smart cubes.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusScan, "scan", false, "Scan for smart cubes")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd.Context())
	s := a.settings
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "reorient status")
	fmt.Fprintln(out, "===============")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Table depth: %d\n", s.Depth)
	fmt.Fprintf(out, "Max depth:   %d\n", s.MaxDepth)
	fmt.Fprintf(out, "Notation:    %s\n", s.Notation())
	if len(s.CheapMoves) > 0 {
		fmt.Fprintf(out, "Cheap moves: %v\n", s.CheapMoves)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Database: %s\n", s.DB)
	if db := a.openDB(); db != nil {
		defer db.Close()

		searches := storage.NewSearchRepository(db)
		if total, err := searches.Count(); err == nil {
			fmt.Fprintf(out, "Searches: %d\n", total)
		}
		if last, err := searches.List(1); err == nil && len(last) > 0 {
			fmt.Fprintf(out, "Last search: %s (%s)\n", last[0].Algorithm, last[0].CreatedAt.Local().Format(time.RFC3339))
		}

		if info, err := storage.NewTableRepository(db).Info(s.Depth); err == nil {
			fmt.Fprintf(out, "Cached table: depth %d, %d states\n", info.Depth, info.StateCount)
		} else {
			fmt.Fprintln(out, "No cached table (run 'reorient table' to build one)")
		}
	}
	fmt.Fprintln(out)

	stateFile, err := recorder.NewStateFile(filepath.Join(config.HomeDir(), "state.json"))
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	if state := stateFile.State(); state.LastDeviceID != "" {
		fmt.Fprintf(out, "Last device: %s (%s)\n", state.LastDeviceName, state.LastDeviceID)
	} else {
		fmt.Fprintln(out, "No device history")
	}

	if !statusScan {
		return nil
	}

	fmt.Fprintln(out)
	_, results, err := scanForCube(cmd.Context(), out, a.logger, 1)
	if err != nil {
		fmt.Fprintf(out, "Scan error: %v\n", err)
		return nil
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No smart cubes found")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Tips:")
		fmt.Fprintln(out, "  - Ensure your GoCube is powered on")
		fmt.Fprintln(out, "  - Move the cube to wake it up")
		fmt.Fprintln(out, "  - Check that Bluetooth is enabled")
		return nil
	}

	fmt.Fprintf(out, "Found %d device(s):\n", len(results))
	for _, r := range results {
		fmt.Fprintf(out, "  - %s (UUID: %s, RSSI: %d)\n", r.Name, r.UUID, r.RSSI)
	}
	return nil
}
