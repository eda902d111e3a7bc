package prune

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/reorient"
)

func buildTable(t *testing.T) *Table {
	t.Helper()
	table, err := Build(2)
	require.NoError(t, err)
	return table
}

func TestBuildRejectsShallowDepth(t *testing.T) {
	for _, depth := range []int{-1, 0, 1} {
		_, err := Build(depth)
		assert.ErrorIs(t, err, ErrDepthTooShallow, "depth %d", depth)
	}
}

func TestBuildDepthTwo(t *testing.T) {
	table := buildTable(t)

	assert.Equal(t, 2, table.Depth())
	assert.Equal(t, 6288, table.Len())
	assert.Equal(t, []int{24, 432, 5832}, table.Histogram())
}

func TestLowerBound(t *testing.T) {
	table := buildTable(t)
	solved := reorient.NewCube()

	tests := []struct {
		name  string
		moves []reorient.Move
		want  int
	}{
		{"solved", nil, 0},
		{"one turn", []reorient.Move{reorient.R}, 1},
		{"half turn", []reorient.Move{reorient.U2}, 1},
		{"two turns", []reorient.Move{reorient.R, reorient.U}, 2},
		{"commuting pair", []reorient.Move{reorient.R, reorient.L}, 2},
		{"cancelling pair", []reorient.Move{reorient.R, reorient.RPrime}, 0},
		{"beyond table", reorient.SexyMove, 3},
		{"rotation only", []reorient.Move{reorient.X, reorient.Y}, 0},
		{"wide turn", []reorient.Move{{Layer: reorient.LayerRw, Turn: reorient.CW}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.LowerBound(solved.ApplyMoves(tt.moves)))
		})
	}
}

func TestLowerBoundInvariantUnderReorientation(t *testing.T) {
	table := buildTable(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		c := reorient.NewCube()
		for n := rng.Intn(5); n > 0; n-- {
			c = c.Apply(reorient.FaceMoves[rng.Intn(len(reorient.FaceMoves))])
		}
		want := table.LowerBound(c)
		for _, r := range reorient.Catalog() {
			assert.Equal(t, want, table.LowerBound(c.ApplyMoves(r.Rotations())), "reorientation %s", r)
		}
	}
}

func TestFromEntries(t *testing.T) {
	table := buildTable(t)

	restored, err := FromEntries(table.Depth(), table.Entries())
	require.NoError(t, err)
	assert.Equal(t, table.Len(), restored.Len())
	assert.Equal(t, table.Histogram(), restored.Histogram())

	c := reorient.NewCube().ApplyMoves([]reorient.Move{reorient.F, reorient.D2})
	assert.Equal(t, table.LowerBound(c), restored.LowerBound(c))
}

func TestFromEntriesValidation(t *testing.T) {
	_, err := FromEntries(1, nil)
	assert.ErrorIs(t, err, ErrDepthTooShallow)

	_, err = FromEntries(2, []Entry{{State: reorient.NewCube(), Distance: 3}})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}
