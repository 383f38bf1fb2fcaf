package rubikscube

import (
	"fmt"

	"github.com/h4rr9/rubiks-cube/internal/facelet"
	"github.com/h4rr9/rubiks-cube/internal/orientation"
	"github.com/h4rr9/rubiks-cube/internal/perm"
)

// Parity is the sign of a permutation.
type Parity = perm.Parity

const (
	Even = perm.Even
	Odd  = perm.Odd
)

// Cube is the state of a 3x3x3 cube.
//
// Cubicles are the fixed slots (8 corner, 12 edge); cubies are the pieces
// that move between them. Orientations are stored per cubie, so a twist
// travels with its piece. Cube is a plain value: copying it copies the state
// and == compares states.
type Cube struct {
	edges        perm.Permutation
	corners      perm.Permutation
	edgeFlips    orientation.Set
	cornerTwists orientation.Set
}

// New returns a solved cube.
func New() Cube {
	return Cube{
		edges:        perm.New(facelet.NumEdges),
		corners:      perm.New(facelet.NumCorners),
		edgeFlips:    orientation.NewEdgeSet(),
		cornerTwists: orientation.NewCornerSet(),
	}
}

// Turn applies a single face turn.
func (c *Cube) Turn(t Turn) {
	if !t.Valid() {
		panic(fmt.Sprintf("rubikscube: invalid turn %d", uint8(t)))
	}
	l := layers[t.Face()]
	dir := t.Direction()

	// Orientation is keyed by cubie, so resolve cubicles before they move.
	if dir != Half {
		switch t.Face() {
		case FaceL, FaceR:
			for _, e := range l.edges {
				c.edgeFlips.AddOne(c.edges.CubieIn(e))
			}
			c.twistCorners(l.corners)
		case FaceF, FaceB:
			c.twistCorners(l.corners)
		}
	}

	a, b, cc, d := l.edges[0], l.edges[1], l.edges[2], l.edges[3]
	w, x, y, z := l.corners[0], l.corners[1], l.corners[2], l.corners[3]
	switch dir {
	case Clockwise:
		c.edges.SwapFour(a, b, cc, d)
		c.corners.SwapFour(w, x, y, z)
	case CounterClockwise:
		c.edges.SwapFour(d, cc, b, a)
		c.corners.SwapFour(z, y, x, w)
	case Half:
		c.edges.SwapTwo(a, cc)
		c.edges.SwapTwo(b, d)
		c.corners.SwapTwo(w, y)
		c.corners.SwapTwo(x, z)
	}
}

func (c *Cube) twistCorners(cubicles [4]int) {
	for i, cubicle := range cubicles {
		c.cornerTwists.Add(c.corners.CubieIn(cubicle), cornerTwists[i])
	}
}

// Apply applies turns in order.
func (c *Cube) Apply(turns ...Turn) {
	for _, t := range turns {
		c.Turn(t)
	}
}

// ApplyNotation parses and applies a notation string like "R U R' U'".
// Nothing is applied if any token is invalid.
func (c *Cube) ApplyNotation(notation string) error {
	turns, err := ParseTurns(notation)
	if err != nil {
		return err
	}
	c.Apply(turns...)
	return nil
}

// IsSolvable reports whether the state can be reached from a solved cube by
// face turns: the corner and edge permutations have equal parity, edge flips
// sum to 0 mod 2 and corner twists sum to 0 mod 3.
func (c Cube) IsSolvable() bool {
	return c.edges.Parity() == c.corners.Parity() &&
		c.edgeFlips.Sum()%2 == 0 &&
		c.cornerTwists.Sum()%3 == 0
}

// IsSolved reports whether every cubie is home with zero orientation.
func (c Cube) IsSolved() bool {
	return c == New()
}

// Equal reports whether two cubes are in the same state.
func (c Cube) Equal(other Cube) bool {
	return c == other
}

// EdgeParity returns the parity of the edge permutation.
func (c Cube) EdgeParity() Parity { return c.edges.Parity() }

// CornerParity returns the parity of the corner permutation.
func (c Cube) CornerParity() Parity { return c.corners.Parity() }

// EdgeAt returns the edge cubie in the given cubicle and its orientation.
func (c Cube) EdgeAt(cubicle int) (cubie, orient int) {
	cubie = c.edges.CubieIn(cubicle)
	return cubie, c.edgeFlips.At(cubie)
}

// CornerAt returns the corner cubie in the given cubicle and its orientation.
func (c Cube) CornerAt(cubicle int) (cubie, orient int) {
	cubie = c.corners.CubieIn(cubicle)
	return cubie, c.cornerTwists.At(cubie)
}
