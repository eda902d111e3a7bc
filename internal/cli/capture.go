package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/reorient/internal/config"
	"github.com/SeamusWaldron/reorient/internal/recorder"
)

var captureAttempts int

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Record an algorithm from a smart cube and search it",
	Long: `Connect to a GoCube over Bluetooth, record the face turns of an algorithm
and search where to reorient in it.

Keyboard shortcuts:
  s/Space   - Start recording
  e/Enter   - End recording and search
  a/Tab     - Toggle between ETM-optimal and all solutions
  q/Esc     - Quit`,
	Args: cobra.NoArgs,
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().IntVar(&captureAttempts, "attempts", 3, "Number of scan attempts")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd.Context())
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	stateFile, err := recorder.NewStateFile(filepath.Join(config.HomeDir(), "state.json"))
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	fmt.Fprintf(out, "Initializing pruning table to depth %d ...\n", a.settings.Depth)
	sess, err := a.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	client, results, err := scanForCube(ctx, out, a.logger, captureAttempts)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no smart cube found")
	}

	model := newCaptureModel(ctx, sess, client, results, stateFile)
	defer model.cancel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
