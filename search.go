package reorient

import (
	"context"

	"github.com/rs/zerolog"
)

// LowerBounder estimates how many face turns a cube needs to be solved.
// Implementations must never overestimate, must return 0 for a solved cube
// in any orientation, and must return the same bound for a cube and any
// reorientation of it.
type LowerBounder interface {
	LowerBound(c Cube) int
}

// Placement holds one reorientation per gap of an algorithm: entry i is
// inserted between move i and move i+1.
type Placement []Reorientation

// Count returns the number of non-identity reorientations in p.
func (p Placement) Count() int {
	n := 0
	for _, r := range p {
		if !r.IsNone() {
			n++
		}
	}
	return n
}

// Solver searches for reorientation placements. A Solver is immutable after
// construction and safe for concurrent use as long as its LowerBounder is.
type Solver struct {
	oracle   LowerBounder
	catalog  []Reorientation
	maxDepth int
	notation Notation
	cheap    CheapSet
	logger   zerolog.Logger
	progress func(reorients int)
}

// NewSolver creates a solver that prunes with oracle.
func NewSolver(oracle LowerBounder, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.maxDepth < 0 {
		cfg.maxDepth = 0
	}

	return &Solver{
		oracle:   oracle,
		catalog:  Catalog(),
		maxDepth: cfg.maxDepth,
		notation: cfg.notation,
		cheap:    cfg.cheap,
		logger:   cfg.logger,
		progress: cfg.progress,
	}
}

// MaxDepth returns the largest reorientation count the solver tries.
func (s *Solver) MaxDepth() int { return s.maxDepth }

// Notation returns the notation used for solution display strings.
func (s *Solver) Notation() Notation { return s.notation }

// CheapSet returns the reorientations counted as 1 ETM.
func (s *Solver) CheapSet() CheapSet { return s.cheap }

// Cost returns the effective ETM cost of r under this solver's cheap set.
func (s *Solver) Cost(r Reorientation) int { return s.cheap.Cost(r) }

// Search returns every placement of at most budget non-identity
// reorientations into the gaps of moves such that performing moves from
// state, with the placement interleaved, ends within one move of solved.
//
// Placements are returned in gap order and cover len(moves)-1 gaps (none
// for fewer than two moves). The search never fails: an empty result means
// no placement exists at this budget. A cancelled ctx also yields no
// placements.
func (s *Solver) Search(ctx context.Context, state Cube, moves []Move, budget int) []Placement {
	if ctx.Err() != nil {
		return nil
	}

	if len(moves) <= 1 || budget == 0 {
		end := state.ApplyMoves(moves)
		if s.oracle.LowerBound(end) > 1 {
			return nil
		}
		return []Placement{make(Placement, max(len(moves)-1, 0))}
	}

	// Reorienting never changes the bound and each remaining move lowers it
	// by at most one.
	if s.oracle.LowerBound(state) > len(moves)+1 {
		return nil
	}

	var placements []Placement
	next := state.Apply(moves[0])

	for _, r := range s.catalog {
		remaining := budget
		if !r.IsNone() {
			remaining--
		}

		for _, child := range s.Search(ctx, next.ApplyMoves(r.Rotations()), moves[1:], remaining) {
			p := make(Placement, 0, len(child)+1)
			p = append(p, r)
			placements = append(placements, append(p, child...))
		}
	}

	return placements
}
