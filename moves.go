package rubikscube

// Well-known turn sequences.
//
// Example:
//
//	cube.Apply(rubikscube.SexyMove...)
var (
	// SexyMove is R U R' U'; six repetitions return to the start.
	SexyMove = []Turn{R, U, RPrime, UPrime}

	// InverseSexyMove is U R U' R'.
	InverseSexyMove = []Turn{U, R, UPrime, RPrime}

	// TPerm swaps two edges and two corners of the top layer.
	TPerm = []Turn{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

	// Superflip flips all twelve edges in place.
	Superflip = []Turn{U, R2, F, B, R, B2, R, U2, L, B2, R, UPrime, DPrime, R2, F, RPrime, L, B2, U2, F2}
)
