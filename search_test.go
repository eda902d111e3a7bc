package reorient_test

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/reorient"
	"github.com/SeamusWaldron/reorient/internal/prune"
)

var (
	tableOnce   sync.Once
	sharedTable *prune.Table
	tableErr    error
)

func depthTwoTable(t *testing.T) *prune.Table {
	t.Helper()
	tableOnce.Do(func() {
		sharedTable, tableErr = prune.Build(2)
	})
	require.NoError(t, tableErr)
	return sharedTable
}

func newSolver(t *testing.T, opts ...reorient.Option) *reorient.Solver {
	t.Helper()
	opts = append([]reorient.Option{reorient.WithMaxDepth(3)}, opts...)
	return reorient.NewSolver(depthTwoTable(t), opts...)
}

func mustParse(t *testing.T, s string) []reorient.Move {
	t.Helper()
	moves, err := reorient.ParseMoves(s)
	require.NoError(t, err)
	return moves
}

func displays(solutions []reorient.Solution) []string {
	out := make([]string, len(solutions))
	for i, s := range solutions {
		out[i] = s.Display
	}
	return out
}

func costs(solutions []reorient.Solution) []int {
	out := make([]int, len(solutions))
	for i, s := range solutions {
		out[i] = s.Cost
	}
	return out
}

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		alg       string
		reorients int
		count     int
		first     string
		minCost   int
	}{
		{"R U", 1, 4, "R Oz' U", 1},
		{"R R'", 0, 1, "R R'", 0},
		{"R U R' U'", 1, 1, "R U Ozx2 R' U'", 3},
		{"R U F", 2, 16, "R Oz' U Ox' F", 2},
		{"Rw U", 1, 0, "Rw Oz U", 1},
	}

	solver := newSolver(t)
	for _, tt := range tests {
		t.Run(tt.alg, func(t *testing.T) {
			result, err := solver.Solve(context.Background(), mustParse(t, tt.alg))
			require.NoError(t, err)
			require.True(t, result.Found())

			assert.Equal(t, tt.reorients, result.Reorients)
			if tt.count > 0 {
				assert.Len(t, result.Solutions, tt.count)
			}
			assert.Equal(t, tt.first, result.Solutions[0].Display)
			assert.Equal(t, tt.minCost, result.MinCost())
		})
	}
}

func TestSolveRU(t *testing.T) {
	result, err := newSolver(t).Solve(context.Background(), mustParse(t, "R U"))
	require.NoError(t, err)

	assert.Equal(t, []string{"R Oz' U", "R Ozx2 U", "R Oy'x' U", "R Oyx U"}, displays(result.Solutions))
	assert.Equal(t, []int{1, 3, 2, 2}, costs(result.Solutions))
	assert.Equal(t, []string{"R Oz' U"}, displays(result.Optimal()))
	assert.Equal(t, 3, result.STM())
}

func TestSolveDegenerate(t *testing.T) {
	solver := newSolver(t)

	result, err := solver.Solve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Reorients)
	require.Len(t, result.Solutions, 1)
	assert.Equal(t, "", result.Solutions[0].Display)
	assert.Equal(t, 0, result.Solutions[0].Cost)

	result, err = solver.Solve(context.Background(), mustParse(t, "R"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Reorients)
	assert.Equal(t, []string{"R"}, displays(result.Solutions))
	assert.Equal(t, []int{0}, costs(result.Solutions))
}

func TestSolveStickerNotation(t *testing.T) {
	solver := newSolver(t, reorient.WithStickerNotation(true))

	result, err := solver.Solve(context.Background(), mustParse(t, "R U"))
	require.NoError(t, err)
	assert.Equal(t, "R 23I:F U", result.Solutions[0].Display)
}

func TestSolveCheapSetChangesOptimal(t *testing.T) {
	cheap, err := reorient.ParseCheapSet([]string{"zx2"})
	require.NoError(t, err)
	solver := newSolver(t, reorient.WithCheapSet(cheap))

	result, err := solver.Solve(context.Background(), mustParse(t, "R U"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 2}, costs(result.Solutions))
	assert.Equal(t, []string{"R Oz' U", "R Ozx2 U"}, displays(result.Optimal()))
	assert.Len(t, result.Filter(true), 4)
}

func TestSolveUnsupportedMoveFailsFormatting(t *testing.T) {
	_, err := newSolver(t).Solve(context.Background(), mustParse(t, "M"))
	assert.ErrorIs(t, err, reorient.ErrUnsupportedMove)
}

func TestSolveRespectsMaxDepth(t *testing.T) {
	solver := newSolver(t, reorient.WithMaxDepth(0))

	result, err := solver.Solve(context.Background(), mustParse(t, "R U"))
	require.NoError(t, err)
	assert.False(t, result.Found())
	assert.Equal(t, "No solutions?\n", result.Report(false))
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSolver(t).Solve(ctx, mustParse(t, "R U F"))
	assert.ErrorIs(t, err, context.Canceled)
}

type constantBound int

func (b constantBound) LowerBound(reorient.Cube) int { return int(b) }

func TestSolveNoSolution(t *testing.T) {
	solver := reorient.NewSolver(constantBound(10), reorient.WithMaxDepth(3))

	result, err := solver.Solve(context.Background(), mustParse(t, "R U F"))
	require.NoError(t, err)
	assert.False(t, result.Found())
	assert.Nil(t, result.Optimal())
	assert.Equal(t, 0, result.MinCost())
}

func TestSearchMonotonicInBudget(t *testing.T) {
	solver := newSolver(t)
	ctx := context.Background()

	for _, alg := range []string{"R U", "R U F", "R U R' U'"} {
		t.Run(alg, func(t *testing.T) {
			moves := mustParse(t, alg)
			for budget := 0; budget < 2; budget++ {
				larger := make(map[string]bool)
				for _, p := range solver.Search(ctx, reorient.NewCube(), moves, budget+1) {
					larger[placementKey(p)] = true
				}
				for _, p := range solver.Search(ctx, reorient.NewCube(), moves, budget) {
					assert.True(t, larger[placementKey(p)], "budget %d placement %v missing at %d", budget, p, budget+1)
				}
			}
		})
	}

	assert.Len(t, solver.Search(ctx, reorient.NewCube(), mustParse(t, "R U"), 2), 4)
}

func TestSearchPlacementsRespectBudget(t *testing.T) {
	solver := newSolver(t)
	moves := mustParse(t, "R U F")

	for _, p := range solver.Search(context.Background(), reorient.NewCube(), moves, 2) {
		assert.Len(t, p, len(moves)-1)
		assert.LessOrEqual(t, p.Count(), 2)
	}
}

func placementKey(p reorient.Placement) string {
	var b strings.Builder
	for _, r := range p {
		b.WriteByte(byte(r))
	}
	return b.String()
}

// Every printed solution, replayed with its rotations, must end within one
// move of solved.
func TestSolutionDisplayReplays(t *testing.T) {
	table := depthTwoTable(t)

	for _, notation := range []reorient.Notation{reorient.NotationXYZ, reorient.NotationSticker} {
		solver := newSolver(t, reorient.WithNotation(notation))
		for _, alg := range []string{"R U", "R U F", "R U R' U'", "Rw U"} {
			result, err := solver.Solve(context.Background(), mustParse(t, alg))
			require.NoError(t, err)

			for _, s := range result.Solutions {
				c := reorient.NewCube()
				for _, tok := range strings.Fields(s.Display) {
					if m, err := reorient.ParseMove(tok); err == nil {
						c = c.Apply(m)
						continue
					}
					r, err := reorient.ParseReorientation(tok)
					require.NoError(t, err, "token %q in %q", tok, s.Display)
					c = c.ApplyMoves(r.Rotations())
				}
				assert.LessOrEqual(t, table.LowerBound(c), 1, "%s: %q", notation, s.Display)
			}
		}
	}
}

func TestFormatSolution(t *testing.T) {
	moves := mustParse(t, "R U F")

	s, err := reorient.FormatSolution(moves, reorient.Placement{reorient.ReorientNone, reorient.ReorientUF}, reorient.NotationXYZ)
	require.NoError(t, err)
	assert.Equal(t, "R U Oxy2 F", s)

	_, err = reorient.FormatSolution(moves, reorient.Placement{reorient.ReorientNone}, reorient.NotationXYZ)
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	result, err := newSolver(t).Solve(context.Background(), mustParse(t, "R U"))
	require.NoError(t, err)

	assert.Equal(t,
		"Found 4 solutions with 1 reorients (3 STM).\n1 of them add only 1 ETM.\nR Oz' U\n",
		result.Report(false))
	assert.True(t, strings.HasPrefix(result.Report(true), "Found 4 solutions with 1 reorients (3 STM).\nR Oz' U\n"))
}

func TestSolverConcurrentUse(t *testing.T) {
	solver := newSolver(t)
	alg := mustParse(t, "R U")

	var wg sync.WaitGroup
	results := make([]reorient.Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = solver.Solve(context.Background(), alg)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, []string{"R Oz' U", "R Ozx2 U", "R Oy'x' U", "R Oyx U"}, displays(r.Solutions))
	}
}

func TestSolveReportsProgress(t *testing.T) {
	var seen []int
	solver := newSolver(t, reorient.WithProgress(func(k int) { seen = append(seen, k) }))

	_, err := solver.Solve(context.Background(), mustParse(t, "R U F"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestSolveUnboundedMaxDepth(t *testing.T) {
	solver := newSolver(t, reorient.WithMaxDepth(math.MaxInt))

	result, err := solver.Solve(context.Background(), mustParse(t, "R U"))
	require.NoError(t, err)
	require.True(t, result.Found())
	assert.Equal(t, 1, result.Reorients)
	assert.Equal(t, "R Oz' U", result.Solutions[0].Display)
}
