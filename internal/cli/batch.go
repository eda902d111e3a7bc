package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/reorient"
)

var (
	batchJobs   int
	batchFormat string
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Solve every algorithm in a file",
	Long: `Read one algorithm per line ("-" for stdin) and solve them concurrently.
Blank lines and lines starting with # are skipped.

Output formats:
  text  - the interactive report for each algorithm
  json  - a JSON array of results
  yaml  - a YAML list of results`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", runtime.NumCPU(), "Number of concurrent searches")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "text", "Output format (text, json, yaml)")
	rootCmd.AddCommand(batchCmd)
}

type batchSolution struct {
	Cost    int    `json:"cost" yaml:"cost"`
	Display string `json:"display" yaml:"display"`
}

type batchRecord struct {
	Line      int             `json:"line" yaml:"line"`
	Algorithm string          `json:"algorithm" yaml:"algorithm"`
	Reorients int             `json:"reorients" yaml:"reorients"`
	STM       int             `json:"stm" yaml:"stm"`
	MinCost   int             `json:"min_cost" yaml:"min_cost"`
	Solutions []batchSolution `json:"solutions" yaml:"solutions"`
	Error     string          `json:"error,omitempty" yaml:"error,omitempty"`

	result reorient.Result
}

type batchLine struct {
	number int
	text   string
}

func runBatch(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd.Context())

	switch batchFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", batchFormat)
	}

	in := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	lines, err := readAlgorithms(in)
	if err != nil {
		return err
	}

	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := solveAll(cmd.Context(), s, lines, batchJobs)
	if err != nil {
		return err
	}

	return writeBatch(cmd.OutOrStdout(), records, batchFormat, a.settings.All)
}

func readAlgorithms(r io.Reader) ([]batchLine, error) {
	var lines []batchLine
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{number: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read algorithms: %w", err)
	}
	return lines, nil
}

// solveAll runs one search per line with at most jobs in flight. Parse and
// formatting errors are reported per record; only cancellation aborts.
func solveAll(ctx context.Context, s *session, lines []batchLine, jobs int) ([]batchRecord, error) {
	records := make([]batchRecord, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i, line := range lines {
		g.Go(func() error {
			rec := batchRecord{Line: line.number, Algorithm: line.text}

			alg, err := reorient.ParseMoves(line.text)
			if err != nil {
				rec.Error = err.Error()
				records[i] = rec
				return nil
			}
			rec.Algorithm = reorient.FormatMoves(alg)

			result, err := s.solve(ctx, alg)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				rec.Error = err.Error()
				records[i] = rec
				return nil
			}

			rec.result = result
			rec.Reorients = result.Reorients
			rec.STM = result.STM()
			rec.MinCost = result.MinCost()
			records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug().Int("algorithms", len(records)).Msg("batch-complete")
	return records, nil
}

func writeBatch(w io.Writer, records []batchRecord, format string, all bool) error {
	for i := range records {
		if records[i].Error == "" {
			records[i].Solutions = []batchSolution{}
		}
		for _, sol := range records[i].result.Filter(all) {
			records[i].Solutions = append(records[i].Solutions, batchSolution{Cost: sol.Cost, Display: sol.Display})
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()

	default:
		for _, rec := range records {
			fmt.Fprintf(w, "# %d: %s\n", rec.Line, rec.Algorithm)
			if rec.Error != "" {
				fmt.Fprintf(w, "Error: %s\n\n", rec.Error)
				continue
			}
			fmt.Fprint(w, rec.result.Report(all))
			fmt.Fprintln(w)
		}
		return nil
	}
}
