package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/reorient/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded searches",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <search-id>",
	Short: "Show every stored solution of a search",
	Long:  `Show a recorded search. A unique prefix of the search ID is enough.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of searches to list")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory(cmd *cobra.Command) (*storage.DB, error) {
	a := appFrom(cmd.Context())
	db, err := storage.OpenAndMigrate(a.settings.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSearchRepository(db)
	searches, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(searches) == 0 {
		fmt.Fprintln(out, "No searches recorded")
		return nil
	}

	total, err := repo.Count()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%-8s  %-16s  %-9s  %-4s  %-9s  %s\n", "ID", "When", "Reorients", "STM", "Solutions", "Algorithm")
	for _, s := range searches {
		fmt.Fprintf(out, "%-8s  %-16s  %-9d  %-4d  %-9d  %s\n",
			s.SearchID[:8], s.CreatedAt.Local().Format("2006-01-02 15:04"), s.Reorients, s.STM, s.SolutionCount, s.Algorithm)
	}
	if total > len(searches) {
		fmt.Fprintf(out, "\nShowing %d of %d searches\n", len(searches), total)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSearchRepository(db)
	s, err := repo.Get(args[0])
	if err != nil {
		return err
	}

	solutions, err := repo.Solutions(s.SearchID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Search:     %s\n", s.SearchID)
	fmt.Fprintf(out, "Recorded:   %s\n", s.CreatedAt.Local().Format(time.RFC1123))
	fmt.Fprintf(out, "Algorithm:  %s\n", s.Algorithm)
	fmt.Fprintf(out, "Notation:   %s (max depth %d, table depth %d)\n", s.Notation, s.MaxDepth, s.TableDepth)
	fmt.Fprintf(out, "Found %d solutions with %d reorients (%d STM), best adds %d ETM.\n\n",
		s.SolutionCount, s.Reorients, s.STM, s.MinCost)

	for _, sol := range solutions {
		marker := " "
		if sol.Cost == s.MinCost {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %2d ETM  %s\n", marker, sol.Cost, sol.Display)
	}
	return nil
}
