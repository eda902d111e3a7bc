// Package reorient finds where to insert whole-cube rotations into a
// rotationless Rubik's cube algorithm.
//
// Given an algorithm written without rotations, the solver searches every
// gap between consecutive moves for one of the 24 cube orientations so
// that executing the moves with those rotations leaves the cube within one
// move of solved. It minimizes the number of inserted rotations first and
// their execution-turn-metric (ETM) cost second.
//
// # Quick Start
//
//	table, err := prune.Build(2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	solver := reorient.NewSolver(table, reorient.WithMaxDepth(3))
//
//	alg, _ := reorient.ParseMoves("R U")
//	result, err := solver.Solve(ctx, alg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range result.Optimal() {
//	    fmt.Println(s.Display) // R Oz' U
//	}
//
// # Reorientation Notation
//
// Rotations are printed in one of two notations:
//
//   - NotationXYZ: the rotation performed, e.g. Ox, Oy', Oxy2
//   - NotationSticker: where the stickers end up, e.g. 23I:L, 23I:DF
//
// The identity reorientation renders as a single space.
//
// # Costs
//
// Face-axis quarter rotations cost 1 ETM, face-axis half rotations and
// corner-axis rotations cost 2 and edge-axis rotations cost 3. A CheapSet
// marks chosen reorientations as 1 ETM.
package reorient
