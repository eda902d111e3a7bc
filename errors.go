package reorient

import "errors"

// Sentinel errors for the reorient package.
var (
	// Parsing errors
	ErrInvalidNotation      = errors.New("reorient: invalid move notation")
	ErrUnknownReorientation = errors.New("reorient: unknown reorientation")

	// Formatting errors
	ErrUnsupportedMove = errors.New("reorient: unsupported move")
)
