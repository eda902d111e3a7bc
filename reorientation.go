package reorient

import (
	"fmt"
	"strings"
)

// Reorientation is one of the 24 ways to hold the cube. The zero value is
// the identity.
type Reorientation uint8

const (
	ReorientNone Reorientation = iota

	// Face-axis quarter turns, named after the face turn they follow
	ReorientR
	ReorientL
	ReorientU
	ReorientD
	ReorientF
	ReorientB

	// Face-axis half turns
	ReorientR2
	ReorientU2
	ReorientF2

	// Edge-axis half turns
	ReorientUF
	ReorientUR
	ReorientFR
	ReorientDF
	ReorientUL
	ReorientBR

	// Corner-axis third turns
	ReorientUFR
	ReorientDBL
	ReorientUFL
	ReorientDBR
	ReorientDFR
	ReorientUBL
	ReorientUBR
	ReorientDFL

	numReorientations
)

// Notation selects how reorientations are rendered.
type Notation int

const (
	// NotationXYZ names the rotation performed, e.g. "Oxy2".
	NotationXYZ Notation = iota
	// NotationSticker names where the stickers end up, e.g. "23I:UF".
	NotationSticker
)

func (n Notation) String() string {
	if n == NotationSticker {
		return "sticker"
	}
	return "xyz"
}

type reorientInfo struct {
	name      string
	baseCost  int
	xyz       string
	sticker   string
	rotations []Move
}

var reorientTable = [numReorientations]reorientInfo{
	ReorientNone: {"None", 0, "", "", nil},

	ReorientR: {"R", 1, "Ox", "23I:L", []Move{X}},
	ReorientL: {"L", 1, "Ox'", "23I:R", []Move{XPrime}},
	ReorientU: {"U", 1, "Oy", "23I:D", []Move{Y}},
	ReorientD: {"D", 1, "Oy'", "23I:U", []Move{YPrime}},
	ReorientF: {"F", 1, "Oz", "23I:B", []Move{Z}},
	ReorientB: {"B", 1, "Oz'", "23I:F", []Move{ZPrime}},

	ReorientR2: {"R2", 2, "Ox2", "23I:R2", []Move{X2}},
	ReorientU2: {"U2", 2, "Oy2", "23I:U2", []Move{Y2}},
	ReorientF2: {"F2", 2, "Oz2", "23I:F2", []Move{Z2}},

	ReorientUF: {"UF", 3, "Oxy2", "23I:UF", []Move{X, Y2}},
	ReorientUR: {"UR", 3, "Ozx2", "23I:UR", []Move{Z, X2}},
	ReorientFR: {"FR", 3, "Oyz2", "23I:FR", []Move{Y, Z2}},
	ReorientDF: {"DF", 3, "Oxz2", "23I:DF", []Move{X, Z2}},
	ReorientUL: {"UL", 3, "Ozy2", "23I:UL", []Move{Z, Y2}},
	ReorientBR: {"BR", 3, "Oyx2", "23I:BR", []Move{Y, X2}},

	ReorientUFR: {"UFR", 2, "Oxy", "23I:DBL", []Move{X, Y}},
	ReorientDBL: {"DBL", 2, "Oy'x'", "23I:UFR", []Move{YPrime, XPrime}},
	ReorientUFL: {"UFL", 2, "Ozy", "23I:DBR", []Move{Z, Y}},
	ReorientDBR: {"DBR", 2, "Oxy'", "23I:UFL", []Move{X, YPrime}},
	ReorientDFR: {"DFR", 2, "Oxz", "23I:UBL", []Move{X, Z}},
	ReorientUBL: {"UBL", 2, "Oyz'", "23I:DFR", []Move{Y, ZPrime}},
	ReorientUBR: {"UBR", 2, "Oyx", "23I:DFL", []Move{Y, X}},
	ReorientDFL: {"DFL", 2, "Ozx'", "23I:UBR", []Move{Z, XPrime}},
}

// Catalog returns all 24 reorientations, identity first.
func Catalog() []Reorientation {
	all := make([]Reorientation, numReorientations)
	for i := range all {
		all[i] = Reorientation(i)
	}
	return all
}

// Valid reports whether r is a catalog member.
func (r Reorientation) Valid() bool {
	return r < numReorientations
}

// IsNone reports whether r is the identity.
func (r Reorientation) IsNone() bool {
	return r == ReorientNone
}

// Name returns the catalog name, e.g. "UFR".
func (r Reorientation) Name() string {
	if !r.Valid() {
		return "?"
	}
	return reorientTable[r].name
}

// BaseCost returns the default ETM cost of r.
func (r Reorientation) BaseCost() int {
	if !r.Valid() {
		return 0
	}
	return reorientTable[r].baseCost
}

// Rotations returns the whole-cube rotations equivalent to r. The identity
// returns an empty slice. Callers must not modify the result.
func (r Reorientation) Rotations() []Move {
	if !r.Valid() {
		return nil
	}
	return reorientTable[r].rotations
}

// Token returns r's bare token in notation n. The identity has no token.
func (r Reorientation) Token(n Notation) string {
	if !r.Valid() {
		return ""
	}
	if n == NotationSticker {
		return reorientTable[r].sticker
	}
	return reorientTable[r].xyz
}

// Display returns r as it appears between two moves of a solution: the
// token padded by one space on each side, or a single space for the
// identity.
func (r Reorientation) Display(n Notation) string {
	if r.IsNone() || !r.Valid() {
		return " "
	}
	return " " + r.Token(n) + " "
}

// String returns the XYZ token, or "None" for the identity.
func (r Reorientation) String() string {
	if r.IsNone() {
		return "None"
	}
	return r.Token(NotationXYZ)
}

// ParseReorientation looks up a reorientation by XYZ token (with or
// without the leading "O", e.g. "xy2" or "Oxy2") or by sticker token
// (e.g. "23I:UF").
func ParseReorientation(s string) (Reorientation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ReorientNone, fmt.Errorf("%w: empty name", ErrUnknownReorientation)
	}
	for r := ReorientR; r < numReorientations; r++ {
		info := reorientTable[r]
		if s == info.xyz || "O"+s == info.xyz || s == info.sticker {
			return r, nil
		}
	}
	return ReorientNone, fmt.Errorf("%w: %q", ErrUnknownReorientation, s)
}
