package reorient

import (
	"fmt"
	"strings"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// CubeFace represents a face position of the cube model.
// This is distinct from Layer which is used for move notation.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Cube is a value type: Apply returns a new cube and never modifies the
// receiver, and two cubes compare equal exactly when every facelet matches.
// Centers move only under slice moves and whole-cube rotations.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewCube() Cube {
	var c Cube
	for face := CubeFace(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f CubeFace) Color {
	switch f {
	case CubeFaceU:
		return White
	case CubeFaceD:
		return Yellow
	case CubeFaceF:
		return Green
	case CubeFaceB:
		return Blue
	case CubeFaceR:
		return Red
	case CubeFaceL:
		return Orange
	default:
		return White
	}
}

// IsSolved returns true if the cube is solved in the standard orientation.
func (c Cube) IsSolved() bool {
	return c == NewCube()
}

// IsSolvedAnyOrientation returns true if every face shows a single color,
// whichever way the cube is held.
func (c Cube) IsSolvedAnyOrientation() bool {
	for face := 0; face < 6; face++ {
		for i := 1; i < 9; i++ {
			if c.Facelets[face][i] != c.Facelets[face][0] {
				return false
			}
		}
	}
	return true
}

// Apply returns the cube after performing m.
func (c Cube) Apply(m Move) Cube {
	if m.Layer >= numLayers {
		return c
	}
	table := &moveTables[m.Layer][m.Turn.quarters()]

	var out Cube
	for i, src := range table {
		out.Facelets[i/9][i%9] = c.Facelets[src/9][src%9]
	}
	return out
}

// ApplyMoves returns the cube after performing moves in order.
func (c Cube) ApplyMoves(moves []Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// Bytes returns the facelets as a 54-byte slice in face order.
func (c Cube) Bytes() []byte {
	b := make([]byte, 0, 54)
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			b = append(b, byte(c.Facelets[face][i]))
		}
	}
	return b
}

// CubeFromBytes is the inverse of Bytes.
func CubeFromBytes(b []byte) (Cube, error) {
	var c Cube
	if len(b) != 54 {
		return c, fmt.Errorf("reorient: cube encoding must be 54 bytes, got %d", len(b))
	}
	for i, v := range b {
		if v > byte(Orange) {
			return c, fmt.Errorf("reorient: invalid color %d at facelet %d", v, i)
		}
		c.Facelets[i/9][i%9] = Color(v)
	}
	return c, nil
}

// String returns a text representation of the cube.
func (c Cube) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[CubeFaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.Facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[CubeFaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
