package reorient

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	alg := []reorient.Move{reorient.R, reorient.U, reorient.RPrime, reorient.UPrime}
var (
	// Right face moves
	R      = Move{Layer: LayerR, Turn: CW}     // Right clockwise
	RPrime = Move{Layer: LayerR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Layer: LayerR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Layer: LayerL, Turn: CW}
	LPrime = Move{Layer: LayerL, Turn: CCW}
	L2     = Move{Layer: LayerL, Turn: Double}

	// Up face moves
	U      = Move{Layer: LayerU, Turn: CW}
	UPrime = Move{Layer: LayerU, Turn: CCW}
	U2     = Move{Layer: LayerU, Turn: Double}

	// Down face moves
	D      = Move{Layer: LayerD, Turn: CW}
	DPrime = Move{Layer: LayerD, Turn: CCW}
	D2     = Move{Layer: LayerD, Turn: Double}

	// Front face moves
	F      = Move{Layer: LayerF, Turn: CW}
	FPrime = Move{Layer: LayerF, Turn: CCW}
	F2     = Move{Layer: LayerF, Turn: Double}

	// Back face moves
	B      = Move{Layer: LayerB, Turn: CW}
	BPrime = Move{Layer: LayerB, Turn: CCW}
	B2     = Move{Layer: LayerB, Turn: Double}

	// Whole-cube rotations
	X      = Move{Layer: LayerX, Turn: CW}
	XPrime = Move{Layer: LayerX, Turn: CCW}
	X2     = Move{Layer: LayerX, Turn: Double}
	Y      = Move{Layer: LayerY, Turn: CW}
	YPrime = Move{Layer: LayerY, Turn: CCW}
	Y2     = Move{Layer: LayerY, Turn: Double}
	Z      = Move{Layer: LayerZ, Turn: CW}
	ZPrime = Move{Layer: LayerZ, Turn: CCW}
	Z2     = Move{Layer: LayerZ, Turn: Double}
)

// FaceMoves is the 18-move half-turn metric alphabet: every outer face in
// every turn variant.
var FaceMoves = []Move{
	R, RPrime, R2,
	L, LPrime, L2,
	U, UPrime, U2,
	D, DPrime, D2,
	B, BPrime, B2,
	F, FPrime, F2,
}

// Sexy move: R U R' U'
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
