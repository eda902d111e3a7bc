package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/reorient"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd.Context())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Initializing pruning table to depth %d ...\n", a.settings.Depth)
	s, err := a.openSession(reorient.WithProgress(func(k int) {
		fmt.Fprintf(out, "Searching solutions with %d reorients\n", k)
	}))
	if err != nil {
		return err
	}
	defer s.Close()
	fmt.Fprintln(out, "Ready!")
	fmt.Fprintln(out)

	return promptLoop(cmd, s, cmd.InOrStdin(), out)
}

// promptLoop reads one algorithm per line until EOF or cancellation.
func promptLoop(cmd *cobra.Command, s *session, in io.Reader, out io.Writer) error {
	ctx := cmd.Context()
	lines := readLines(ctx, in)

	for {
		fmt.Fprint(out, "Enter rotationless algorithm: ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return nil
			}
			line = l
		}

		alg, err := reorient.ParseMoves(line)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n", err)
			continue
		}

		result, err := s.solve(ctx, alg)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n", err)
			continue
		}

		fmt.Fprint(out, result.Report(s.settings.All))
		fmt.Fprintln(out)
	}
}

// readLines feeds lines from in until EOF or until ctx is done.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
