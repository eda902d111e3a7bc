package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/reorient"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the 24 reorientations with their tokens and costs",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cheapStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

func runCatalog(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd.Context())

	cheap, err := reorient.ParseCheapSet(a.settings.CheapMoves)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-5s %-8s %-9s %-9s %s", "Name", "XYZ", "Sticker", "Rotation", "ETM")))

	for _, r := range reorient.Catalog() {
		xyz, sticker := r.Token(reorient.NotationXYZ), r.Token(reorient.NotationSticker)
		if r.IsNone() {
			xyz, sticker = "-", "-"
		}

		cost := fmt.Sprintf("%d", cheap.Cost(r))
		if cheap.Contains(r) && !r.IsNone() {
			cost = cheapStyle.Render(cost + " (cheap)")
		}

		fmt.Fprintf(out, "%-5s %-8s %-9s %-9s %s\n", r.Name(), xyz, sticker, reorient.FormatMoves(r.Rotations()), cost)
	}
	return nil
}
