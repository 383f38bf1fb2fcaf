// Package rubikscube models the state space of a 3x3x3 Rubik's cube.
//
// A Cube is two permutations (which cubie sits in which cubicle, for corners
// and edges) and two orientation sets (how each cubie is twisted). Face turns
// act on those four values directly; facelet arrays are only an input and
// output format.
//
// # Quick Start
//
//	cube := rubikscube.New()
//	cube.Apply(rubikscube.R, rubikscube.U, rubikscube.RPrime, rubikscube.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(cube)
//	fmt.Println("Solvable:", cube.IsSolvable())
//
// # Facelet Arrays
//
// FromArray decodes a 6x3x3 array of color tokens (W, Y, G, B, R, O) laid out
// White, Yellow, Green, Blue, Red, Orange, with Yellow up and Green in front.
// Decoding checks that every face carries its own color in the center but
// does not check reachability; use IsSolvable for that.
//
// # Features
//
// Representation returns a 480-bit one-hot encoding of the state suitable
// as input to a learning model.
package rubikscube
