package reorient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"R2'", R2},
		{"R’", RPrime},
		{"U`", UPrime},
		{"Rw", Move{Layer: LayerRw, Turn: CW}},
		{"r'", Move{Layer: LayerRw, Turn: CCW}},
		{"Bw2", Move{Layer: LayerBw, Turn: Double}},
		{"x", X},
		{"y'", YPrime},
		{"z2", Z2},
		{"M'", Move{Layer: LayerM, Turn: CCW}},
		{"E", Move{Layer: LayerE, Turn: CW}},
		{"S2", Move{Layer: LayerS, Turn: Double}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "Q", "R3", "xw", "Mw", "R''", "RU"} {
		_, err := ParseMove(in)
		assert.ErrorIs(t, err, ErrInvalidNotation, "input %q", in)
	}
}

func TestParseMovesAbortsOnInvalidToken(t *testing.T) {
	moves, err := ParseMoves("R U Q F")
	assert.ErrorIs(t, err, ErrInvalidNotation)
	assert.Nil(t, moves)
}

func TestParseMovesEmpty(t *testing.T) {
	moves, err := ParseMoves("   ")
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestFormatMovesRoundTrip(t *testing.T) {
	in := "R U R' U' Rw2 x y' z2 M E' S"
	moves, err := ParseMoves(in)
	require.NoError(t, err)
	assert.Equal(t, in, FormatMoves(moves))
}

func TestDisplayMove(t *testing.T) {
	for _, m := range []Move{R, UPrime, F2, {Layer: LayerLw, Turn: CCW}, X, ZPrime} {
		s, err := DisplayMove(m)
		require.NoError(t, err)
		assert.Equal(t, m.Notation(), s)
	}

	for _, l := range []Layer{LayerM, LayerE, LayerS} {
		_, err := DisplayMove(Move{Layer: l, Turn: CW})
		assert.ErrorIs(t, err, ErrUnsupportedMove, "layer %s", l)
	}
}

func TestMergeMoves(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R R", "R2"},
		{"R R R", "R'"},
		{"U U'", ""},
		{"R U U' R'", ""},
		{"R U U' F", "R F"},
		{"R2 R", "R'"},
		{"F R U", "F R U"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			moves, err := ParseMoves(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatMoves(MergeMoves(moves)))
		})
	}
}

func TestLayerClassification(t *testing.T) {
	assert.True(t, LayerR.IsFace())
	assert.False(t, LayerRw.IsFace())
	assert.True(t, LayerY.IsRotation())
	assert.False(t, LayerM.IsRotation())
}
