// Package prune provides a distance table used to bound how far a cube is
// from solved.
package prune

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/reorient"
)

// MinDepth is the shallowest table the solver can prune with.
const MinDepth = 2

var (
	ErrDepthTooShallow = errors.New("prune: depth must be at least 2")
	ErrInvalidEntry    = errors.New("prune: invalid table entry")
)

// Table maps every cube within Depth face turns of solved, in any of the
// 24 orientations, to its exact distance.
type Table struct {
	depth     int
	distances map[reorient.Cube]uint8
}

// Entry is one stored state.
type Entry struct {
	State    reorient.Cube
	Distance int
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	logger zerolog.Logger
}

// WithLogger reports build progress to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *buildConfig) {
		c.logger = logger
	}
}

// Build runs a breadth-first search with the 18 face moves from every
// reoriented solved state, recording each state's distance up to depth.
func Build(depth int, opts ...Option) (*Table, error) {
	if depth < MinDepth {
		return nil, fmt.Errorf("%w: got %d", ErrDepthTooShallow, depth)
	}

	cfg := &buildConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	t := &Table{
		depth:     depth,
		distances: make(map[reorient.Cube]uint8),
	}

	var frontier []reorient.Cube
	for _, r := range reorient.Catalog() {
		c := reorient.NewCube().ApplyMoves(r.Rotations())
		if _, ok := t.distances[c]; ok {
			continue
		}
		t.distances[c] = 0
		frontier = append(frontier, c)
	}

	for d := 1; d <= depth; d++ {
		var next []reorient.Cube
		for _, c := range frontier {
			for _, m := range reorient.FaceMoves {
				n := c.Apply(m)
				if _, ok := t.distances[n]; ok {
					continue
				}
				t.distances[n] = uint8(d)
				next = append(next, n)
			}
		}
		cfg.logger.Debug().Int("distance", d).Int("states", len(next)).Msg("table-level")
		frontier = next
	}

	cfg.logger.Info().
		Int("depth", depth).
		Int("states", len(t.distances)).
		Dur("elapsed", time.Since(start)).
		Msg("table-built")

	return t, nil
}

// FromEntries rebuilds a table from stored entries.
func FromEntries(depth int, entries []Entry) (*Table, error) {
	if depth < MinDepth {
		return nil, fmt.Errorf("%w: got %d", ErrDepthTooShallow, depth)
	}

	t := &Table{
		depth:     depth,
		distances: make(map[reorient.Cube]uint8, len(entries)),
	}
	for _, e := range entries {
		if e.Distance < 0 || e.Distance > depth {
			return nil, fmt.Errorf("%w: distance %d outside 0..%d", ErrInvalidEntry, e.Distance, depth)
		}
		t.distances[e.State] = uint8(e.Distance)
	}
	return t, nil
}

// LowerBound returns the stored distance of c, or Depth()+1 when c is
// farther than the table reaches.
func (t *Table) LowerBound(c reorient.Cube) int {
	if d, ok := t.distances[c]; ok {
		return int(d)
	}
	return t.depth + 1
}

// Depth returns the search depth the table was built with.
func (t *Table) Depth() int { return t.depth }

// Len returns the number of stored states.
func (t *Table) Len() int { return len(t.distances) }

// Entries returns every stored state in no particular order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.distances))
	for c, d := range t.distances {
		entries = append(entries, Entry{State: c, Distance: int(d)})
	}
	return entries
}

// Histogram returns the number of states at each distance.
func (t *Table) Histogram() []int {
	counts := make([]int, t.depth+1)
	for _, d := range t.distances {
		counts[d]++
	}
	return counts
}
