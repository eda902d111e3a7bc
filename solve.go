package reorient

import (
	"context"
	"fmt"
)

// Solution is one way to reorient an algorithm.
type Solution struct {
	Placement Placement
	Cost      int    // Effective ETM added by the reorientations
	Display   string // Moves interleaved with reorientation tokens
}

// Result is the outcome of Solve.
type Result struct {
	Algorithm []Move
	Reorients int        // Reorientations used by every solution
	Solutions []Solution // All solutions at that count, in search order
}

// Found reports whether any solution exists.
func (r Result) Found() bool {
	return len(r.Solutions) > 0
}

// STM returns the length of each solution in slice turn metric, counting
// every reorientation as one turn.
func (r Result) STM() int {
	return len(r.Algorithm) + r.Reorients
}

// MinCost returns the smallest solution cost, or 0 when there are none.
func (r Result) MinCost() int {
	if len(r.Solutions) == 0 {
		return 0
	}
	best := r.Solutions[0].Cost
	for _, s := range r.Solutions[1:] {
		best = min(best, s.Cost)
	}
	return best
}

// Optimal returns the ETM-optimal subset: solutions whose cost equals
// MinCost.
func (r Result) Optimal() []Solution {
	if len(r.Solutions) == 0 {
		return nil
	}
	best := r.MinCost()
	var out []Solution
	for _, s := range r.Solutions {
		if s.Cost == best {
			out = append(out, s)
		}
	}
	return out
}

// Filter returns every solution when all is true and the ETM-optimal
// subset otherwise.
func (r Result) Filter(all bool) []Solution {
	if all {
		return r.Solutions
	}
	return r.Optimal()
}

// Solve finds the fewest reorientations that make alg end within one move
// of solved, trying 0, 1, 2, ... up to the solver's max depth, and returns
// every solution at the first count that has any. An empty result with a
// nil error means no count up to the max depth works.
func (s *Solver) Solve(ctx context.Context, alg []Move) (Result, error) {
	result := Result{Algorithm: alg}

	if len(alg) <= 1 {
		display := ""
		if len(alg) == 1 {
			var err error
			if display, err = DisplayMove(alg[0]); err != nil {
				return Result{}, err
			}
		}
		result.Solutions = []Solution{{Placement: Placement{}, Cost: 0, Display: display}}
		return result, nil
	}

	limit := len(alg)
	if s.maxDepth < limit-1 {
		limit = s.maxDepth + 1
	}
	for budget := 0; budget < limit; budget++ {
		s.logger.Debug().Int("reorients", budget).Msg("searching")
		if s.progress != nil {
			s.progress(budget)
		}

		placements := s.Search(ctx, NewCube(), alg, budget)
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("search interrupted at %d reorients: %w", budget, err)
		}
		if len(placements) == 0 {
			continue
		}

		solutions := make([]Solution, 0, len(placements))
		for _, p := range placements {
			display, err := FormatSolution(alg, p, s.notation)
			if err != nil {
				return Result{}, err
			}
			solutions = append(solutions, Solution{
				Placement: p,
				Cost:      s.cheap.PlacementCost(p),
				Display:   display,
			})
		}

		s.logger.Debug().
			Int("reorients", budget).
			Int("solutions", len(solutions)).
			Msg("search-complete")

		result.Reorients = budget
		result.Solutions = solutions
		return result, nil
	}

	s.logger.Debug().Int("max_depth", s.maxDepth).Msg("no-solutions")
	return result, nil
}
