package reorient

import "github.com/rs/zerolog"

// Option configures a Solver.
type Option func(*config)

type config struct {
	maxDepth int
	notation Notation
	cheap    CheapSet
	logger   zerolog.Logger
	progress func(reorients int)
}

func defaultConfig() *config {
	return &config{
		maxDepth: 3,
		notation: NotationXYZ,
		logger:   zerolog.Nop(),
	}
}

// WithMaxDepth sets the largest number of reorientations the solver will
// try before giving up. Defaults to 3.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithNotation selects how reorientations are rendered in solutions.
func WithNotation(n Notation) Option {
	return func(c *config) {
		c.notation = n
	}
}

// WithStickerNotation is a shorthand for WithNotation(NotationSticker)
// when enabled is true.
func WithStickerNotation(enabled bool) Option {
	return func(c *config) {
		if enabled {
			c.notation = NotationSticker
		} else {
			c.notation = NotationXYZ
		}
	}
}

// WithCheapSet marks reorientations that count as a single ETM.
func WithCheapSet(set CheapSet) Option {
	return func(c *config) {
		c.cheap = set
	}
}

// WithLogger attaches a logger for search progress.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithProgress calls fn before each reorientation count is searched.
func WithProgress(fn func(reorients int)) Option {
	return func(c *config) {
		c.progress = fn
	}
}
