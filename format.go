package reorient

import (
	"fmt"
	"strings"
)

// FormatSolution interleaves moves with the reorientations of p:
// move 1, reorientation 1, move 2, reorientation 2, ... Each reorientation
// carries its own surrounding spaces (see Reorientation.Display), so no
// other separators are added.
func FormatSolution(moves []Move, p Placement, n Notation) (string, error) {
	if len(moves) == 0 {
		return "", nil
	}
	if len(p) != len(moves)-1 {
		return "", fmt.Errorf("reorient: placement covers %d gaps, algorithm has %d", len(p), len(moves)-1)
	}

	var b strings.Builder
	for i, m := range moves {
		if i > 0 {
			b.WriteString(p[i-1].Display(n))
		}
		s, err := DisplayMove(m)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Report writes the summary the interactive tool prints for a result.
// When all is false only the ETM-optimal solutions are listed.
func (r Result) Report(all bool) string {
	var b strings.Builder
	if !r.Found() {
		b.WriteString("No solutions?\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d solutions with %d reorients (%d STM).\n", len(r.Solutions), r.Reorients, r.STM())
	solutions := r.Filter(all)
	if !all {
		fmt.Fprintf(&b, "%d of them add only %d ETM.\n", len(solutions), r.MinCost())
	}
	for _, s := range solutions {
		b.WriteString(s.Display)
		b.WriteString("\n")
	}
	return b.String()
}
