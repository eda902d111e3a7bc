package smartcube

import (
	"fmt"

	"github.com/SeamusWaldron/reorient"
)

// colorToLayer maps center colors to faces with white on top and green in
// front.
var colorToLayer = map[string]reorient.Layer{
	"white":  reorient.LayerU,
	"yellow": reorient.LayerD,
	"green":  reorient.LayerF,
	"blue":   reorient.LayerB,
	"red":    reorient.LayerR,
	"orange": reorient.LayerL,
}

// RotationToMove converts a rotation event to a face turn.
func RotationToMove(rot RotationEvent) (reorient.Move, error) {
	layer, ok := colorToLayer[rot.Color]
	if !ok {
		return reorient.Move{}, fmt.Errorf("unknown face color %q", rot.Color)
	}

	turn := reorient.CCW
	if rot.Clockwise {
		turn = reorient.CW
	}
	return reorient.Move{Layer: layer, Turn: turn}, nil
}

// RotationsToMoves converts rotation events to moves, merging adjacent
// turns of the same face so that two quarter turns become a half turn.
func RotationsToMoves(rotations []RotationEvent) ([]reorient.Move, error) {
	moves := make([]reorient.Move, 0, len(rotations))
	for _, rot := range rotations {
		m, err := RotationToMove(rot)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return reorient.MergeMoves(moves), nil
}

var faceColors = map[string]reorient.Color{
	"U": reorient.White,
	"D": reorient.Yellow,
	"F": reorient.Green,
	"B": reorient.Blue,
	"R": reorient.Red,
	"L": reorient.Orange,
}

// HeldOrientation returns the reorientation that takes a cube held white
// up, green front to one held with the given faces up and front.
func HeldOrientation(upFace, frontFace string) (reorient.Reorientation, error) {
	up, ok := faceColors[upFace]
	if !ok {
		return reorient.ReorientNone, fmt.Errorf("unknown face %q", upFace)
	}
	front, ok := faceColors[frontFace]
	if !ok {
		return reorient.ReorientNone, fmt.Errorf("unknown face %q", frontFace)
	}

	for _, r := range reorient.Catalog() {
		c := reorient.NewCube().ApplyMoves(r.Rotations())
		if c.Facelets[reorient.CubeFaceU][4] == up && c.Facelets[reorient.CubeFaceF][4] == front {
			return r, nil
		}
	}
	return reorient.ReorientNone, fmt.Errorf("faces %s and %s are not adjacent", upFace, frontFace)
}
