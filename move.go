package reorient

import (
	"fmt"
	"strings"
)

// Layer identifies which slice of the cube a move turns.
type Layer uint8

const (
	LayerR Layer = iota // Right face
	LayerL              // Left face
	LayerU              // Up face
	LayerD              // Down face
	LayerF              // Front face
	LayerB              // Back face

	LayerRw // Right two layers
	LayerLw // Left two layers
	LayerUw // Up two layers
	LayerDw // Down two layers
	LayerFw // Front two layers
	LayerBw // Back two layers

	LayerX // Whole cube about the R axis
	LayerY // Whole cube about the U axis
	LayerZ // Whole cube about the F axis

	LayerM // Middle slice, follows L
	LayerE // Equatorial slice, follows D
	LayerS // Standing slice, follows F

	numLayers
)

var layerNames = [numLayers]string{
	"R", "L", "U", "D", "F", "B",
	"Rw", "Lw", "Uw", "Dw", "Fw", "Bw",
	"x", "y", "z",
	"M", "E", "S",
}

func (l Layer) String() string {
	if l < numLayers {
		return layerNames[l]
	}
	return "?"
}

// IsFace reports whether the layer is a single outer face.
func (l Layer) IsFace() bool {
	return l <= LayerB
}

// IsRotation reports whether the layer is a whole-cube rotation.
func (l Layer) IsRotation() bool {
	return l == LayerX || l == LayerY || l == LayerZ
}

// Turn represents the direction and magnitude of a layer turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// quarters returns the turn as a count of clockwise quarter turns.
func (t Turn) quarters() int {
	switch t {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}

func (t Turn) suffix() string {
	switch t {
	case CCW:
		return "'"
	case Double:
		return "2"
	default:
		return ""
	}
}

// Move is a single atomic cube operation.
type Move struct {
	Layer Layer
	Turn  Turn
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, Rw', x2, M
func (m Move) Notation() string {
	return m.Layer.String() + m.Turn.suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// DisplayMove renders a move for a solution string. Only faces, wide
// moves and whole-cube rotations can be displayed; anything else returns
// ErrUnsupportedMove.
func DisplayMove(m Move) (string, error) {
	if m.Layer >= LayerM {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMove, m.Notation())
	}
	switch m.Turn {
	case CW, CCW, Double:
	default:
		return "", fmt.Errorf("%w: turn %d", ErrUnsupportedMove, m.Turn)
	}
	return m.Notation(), nil
}

var wideLayers = map[byte]Layer{
	'r': LayerRw, 'l': LayerLw, 'u': LayerUw,
	'd': LayerDw, 'f': LayerFw, 'b': LayerBw,
}

var plainLayers = map[byte]Layer{
	'R': LayerR, 'L': LayerL, 'U': LayerU, 'D': LayerD, 'F': LayerF, 'B': LayerB,
	'x': LayerX, 'y': LayerY, 'z': LayerZ,
	'M': LayerM, 'E': LayerE, 'S': LayerS,
}

// ParseMove parses a notation string into a Move.
// Lowercase face letters and a trailing "w" both denote wide moves.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("’", "'", "`", "'").Replace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	var layer Layer
	rest := s[1:]
	if l, ok := wideLayers[s[0]]; ok {
		layer = l
	} else if l, ok := plainLayers[s[0]]; ok {
		layer = l
		if layer.IsFace() && strings.HasPrefix(rest, "w") {
			layer += LayerRw - LayerR
			rest = rest[1:]
		}
	} else {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW
	switch rest {
	case "":
	case "'":
		turn = CCW
	case "2", "2'":
		turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Move{Layer: layer, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token aborts parsing and no moves are returned.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// MergeMoves combines adjacent turns of the same layer. Turns that cancel
// out are dropped, so "R R" becomes "R2" and "U U'" disappears.
func MergeMoves(moves []Move) []Move {
	merged := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(merged); n > 0 && merged[n-1].Layer == m.Layer {
			q := (merged[n-1].Turn.quarters() + m.Turn.quarters()) % 4
			if q == 0 {
				merged = merged[:n-1]
				continue
			}
			merged[n-1].Turn = turnFromQuarters(q)
			continue
		}
		merged = append(merged, m)
	}
	return merged
}

func turnFromQuarters(q int) Turn {
	switch q {
	case 2:
		return Double
	case 3:
		return CCW
	default:
		return CW
	}
}
