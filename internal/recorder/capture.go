// Package recorder turns a stream of smart-cube notifications into an
// algorithm.
package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/reorient"
	"github.com/SeamusWaldron/reorient/internal/smartcube"
)

// State is the lifecycle of a capture.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Capture records face turns between Start and End.
type Capture struct {
	logger zerolog.Logger

	mu        sync.RWMutex
	state     State
	startTime time.Time
	moves     []reorient.Move

	lastUpFace    string
	lastFrontFace string

	onMove        func(reorient.Move)
	onOrientation func(upFace, frontFace string)
}

// NewCapture creates an idle capture.
func NewCapture(logger zerolog.Logger) *Capture {
	return &Capture{logger: logger}
}

// SetMoveCallback sets the callback for new moves.
func (c *Capture) SetMoveCallback(cb func(reorient.Move)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMove = cb
}

// SetOrientationCallback sets the callback for orientation changes.
func (c *Capture) SetOrientationCallback(cb func(upFace, frontFace string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onOrientation = cb
}

// State returns the current capture state.
func (c *Capture) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Start begins recording, discarding any earlier moves.
func (c *Capture) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRecording {
		return fmt.Errorf("capture already recording")
	}
	c.state = StateRecording
	c.startTime = time.Now()
	c.moves = nil
	c.logger.Debug().Msg("capture-started")
	return nil
}

// End stops recording and returns the captured algorithm with adjacent
// turns of the same face merged.
func (c *Capture) End() []reorient.Move {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateEnded
	moves := reorient.MergeMoves(c.moves)
	c.logger.Debug().
		Int("turns", len(c.moves)).
		Int("moves", len(moves)).
		Dur("elapsed", time.Since(c.startTime)).
		Msg("capture-ended")
	return moves
}

// Moves returns the turns recorded so far without merging.
func (c *Capture) Moves() []reorient.Move {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]reorient.Move(nil), c.moves...)
}

// HandleMessage processes an incoming notification. Messages outside a
// recording are ignored.
func (c *Capture) HandleMessage(msg *smartcube.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRecording {
		return nil
	}

	switch msg.Type {
	case smartcube.MsgTypeRotation:
		rotations, err := smartcube.DecodeRotation(msg.Payload)
		if err != nil {
			return fmt.Errorf("failed to decode rotations: %w", err)
		}

		for _, rot := range rotations {
			move, err := smartcube.RotationToMove(rot)
			if err != nil {
				return err
			}
			c.moves = append(c.moves, move)

			if c.onMove != nil {
				go c.onMove(move)
			}
		}

	case smartcube.MsgTypeOrientation:
		orient, err := smartcube.DecodeOrientation(msg.Payload)
		if err != nil {
			return fmt.Errorf("failed to decode orientation: %w", err)
		}

		if orient.UpFace != c.lastUpFace || orient.FrontFace != c.lastFrontFace {
			c.lastUpFace = orient.UpFace
			c.lastFrontFace = orient.FrontFace

			if c.onOrientation != nil {
				go c.onOrientation(orient.UpFace, orient.FrontFace)
			}
		}
	}

	return nil
}
