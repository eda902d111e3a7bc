package reorient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	assert.True(t, c.IsSolved())
	assert.True(t, c.IsSolvedAnyOrientation())
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube().Apply(R)
	assert.False(t, c.IsSolved(), "cube should not be solved after R")
	assert.False(t, c.IsSolvedAnyOrientation())
}

func TestApplyDoesNotModifyReceiver(t *testing.T) {
	c := NewCube()
	_ = c.Apply(F)
	assert.True(t, c.IsSolved())
}

func TestQuarterTurnsReturnToSolved_AllLayers(t *testing.T) {
	for l := LayerR; l < numLayers; l++ {
		m := Move{Layer: l, Turn: CW}
		c := NewCube().ApplyMoves([]Move{m, m, m, m})
		assert.True(t, c.IsSolved(), "%s x 4 should return to solved\n%s", m, c)
	}
}

func TestHalfTurnsReturnToSolved(t *testing.T) {
	for _, m := range []Move{R2, U2, F2, L2, D2, B2, X2, Y2, Z2} {
		c := NewCube().ApplyMoves([]Move{m, m})
		assert.True(t, c.IsSolved(), "%s %s should return to solved", m, m)
	}
}

func TestInverseUndoesMove(t *testing.T) {
	for l := LayerR; l < numLayers; l++ {
		for _, turn := range []Turn{CW, CCW, Double} {
			m := Move{Layer: l, Turn: turn}
			c := NewCube().Apply(m).Apply(m.Inverse())
			assert.True(t, c.IsSolved(), "%s %s should return to solved", m, m.Inverse())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		c = c.ApplyMoves(SexyMove)
		if i < 5 {
			assert.False(t, c.IsSolved(), "solved too early after %d repetitions", i+1)
		}
	}
	assert.True(t, c.IsSolved(), "sexy move x 6 should return to solved\n%s", c)
}

func TestTPermTwiceReturnsToSolved(t *testing.T) {
	c := NewCube().ApplyMoves(TPerm)
	assert.False(t, c.IsSolved())
	c = c.ApplyMoves(TPerm)
	assert.True(t, c.IsSolved())
}

func TestScrambleAndReverse(t *testing.T) {
	scramble, err := ParseMoves("R U2 F' L D B2 R' U F2 D' L2 B")
	require.NoError(t, err)

	c := NewCube().ApplyMoves(scramble)
	assert.False(t, c.IsSolved())

	for i := len(scramble) - 1; i >= 0; i-- {
		c = c.Apply(scramble[i].Inverse())
	}
	assert.True(t, c.IsSolved())
}

func TestWideMoveEqualsFaceAndRotation(t *testing.T) {
	tests := []struct {
		wide string
		alt  string
	}{
		{"Rw", "L x"},
		{"Lw", "R x'"},
		{"Uw", "D y"},
		{"Dw", "U y'"},
		{"Fw", "B z"},
		{"Bw", "F z'"},
	}

	for _, tt := range tests {
		t.Run(tt.wide, func(t *testing.T) {
			wide, err := ParseMoves(tt.wide)
			require.NoError(t, err)
			alt, err := ParseMoves(tt.alt)
			require.NoError(t, err)
			assert.Equal(t, NewCube().ApplyMoves(alt), NewCube().ApplyMoves(wide))
		})
	}
}

func TestRotationEqualsLayerTurns(t *testing.T) {
	tests := []struct {
		rotation string
		layers   string
	}{
		{"x", "R M' L'"},
		{"y", "U E' D'"},
		{"z", "F S B'"},
	}

	for _, tt := range tests {
		t.Run(tt.rotation, func(t *testing.T) {
			rot, err := ParseMoves(tt.rotation)
			require.NoError(t, err)
			layers, err := ParseMoves(tt.layers)
			require.NoError(t, err)
			assert.Equal(t, NewCube().ApplyMoves(rot), NewCube().ApplyMoves(layers))
		})
	}
}

func TestRotationsKeepCubeSolvedAnyOrientation(t *testing.T) {
	for _, r := range Catalog() {
		c := NewCube().ApplyMoves(r.Rotations())
		assert.True(t, c.IsSolvedAnyOrientation(), "reorientation %s", r)
		assert.Equal(t, r.IsNone(), c.IsSolved(), "reorientation %s", r)
	}
}

func TestFaceTurnsKeepCenters(t *testing.T) {
	c := NewCube().ApplyMoves(TPerm)
	for f := 0; f < 6; f++ {
		assert.Equal(t, faceToSolvedColor(CubeFace(f)), c.Facelets[f][4], "center of %s", CubeFace(f))
	}
}

func TestCubeBytesRoundTrip(t *testing.T) {
	c := NewCube().ApplyMoves(TPerm)

	b := c.Bytes()
	require.Len(t, b, 54)

	restored, err := CubeFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, c, restored)

	_, err = CubeFromBytes(b[:10])
	assert.Error(t, err)
}
