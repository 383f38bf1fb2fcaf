package rubikscube

import (
	"fmt"
	"unicode"

	"github.com/h4rr9/rubiks-cube/internal/facelet"
	"github.com/h4rr9/rubiks-cube/internal/orientation"
	"github.com/h4rr9/rubiks-cube/internal/perm"
)

// FromArray decodes a cube from a 6x3x3 array of color tokens, faces in the
// order W, Y, G, B, R, O with Yellow up and Green in front.
//
// Tokens are parsed face by face in row-major order and decoding stops at the
// first bad one: an unknown token yields a *FaceletColorError, a center that
// does not match its face index yields a *FaceOrderError.
//
// The result is not checked for reachability; call IsSolvable. A sticker
// combination that matches no cubie cannot be represented and panics.
func FromArray(tokens [6][3][3]string) (Cube, error) {
	var f Facelets
	for face := range tokens {
		for row := range tokens[face] {
			for col, token := range tokens[face][row] {
				color, ok := facelet.ParseColor(token)
				if !ok {
					return Cube{}, &FaceletColorError{Token: token}
				}
				if row == 1 && col == 1 && int(color) != face {
					return Cube{}, &FaceOrderError{Color: color, Index: face}
				}
				f[face][row][col] = color
			}
		}
	}
	return decode(f), nil
}

// FromFacelets decodes a cube from a facelet array. It applies the same checks
// as FromArray.
func FromFacelets(f Facelets) (Cube, error) {
	for face := range f {
		for row := range f[face] {
			for col, color := range f[face][row] {
				if !color.Valid() {
					return Cube{}, &FaceletColorError{Token: color.String()}
				}
				if row == 1 && col == 1 && int(color) != face {
					return Cube{}, &FaceOrderError{Color: color, Index: face}
				}
			}
		}
	}
	return decode(f), nil
}

func at(f *Facelets, c facelet.Coord) Color {
	return f[c.Face][c.Row][c.Col]
}

func decode(f Facelets) Cube {
	var cornerMap [facelet.NumCorners]uint8
	twists := orientation.NewCornerSet()
	for i, coords := range facelet.CornerCoords {
		cubie, o := facelet.MatchCorner(facelet.Corner{at(&f, coords[0]), at(&f, coords[1]), at(&f, coords[2])})
		cornerMap[i] = uint8(cubie)
		twists.Set(cubie, o)
	}

	var edgeMap [facelet.NumEdges]uint8
	flips := orientation.NewEdgeSet()
	for i, coords := range facelet.EdgeCoords {
		cubie, o := facelet.MatchEdge(facelet.Edge{at(&f, coords[0]), at(&f, coords[1])})
		edgeMap[i] = uint8(cubie)
		flips.Set(cubie, o)
	}

	return Cube{
		edges:        perm.NewWithMapping(edgeMap[:]),
		corners:      perm.NewWithMapping(cornerMap[:]),
		edgeFlips:    flips,
		cornerTwists: twists,
	}
}

// Facelets projects the state back onto a facelet array. Decoding the result
// with FromFacelets gives back an equal cube.
func (c Cube) Facelets() Facelets {
	var f Facelets
	for face := range f {
		f[face][1][1] = Color(face)
	}
	for i, coords := range facelet.CornerCoords {
		cubie, o := c.CornerAt(i)
		colors := facelet.Corners[cubie].Oriented(o)
		for slot, xy := range coords {
			f[xy.Face][xy.Row][xy.Col] = colors[slot]
		}
	}
	for i, coords := range facelet.EdgeCoords {
		cubie, o := c.EdgeAt(i)
		colors := facelet.Edges[cubie].Oriented(o)
		for slot, xy := range coords {
			f[xy.Face][xy.Row][xy.Col] = colors[slot]
		}
	}
	return f
}

// ParseFacelets decodes the 54-letter form produced by Facelets.String.
// Whitespace is ignored.
func ParseFacelets(s string) (Cube, error) {
	var tokens [6][3][3]string
	i := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if i == 54 {
			return Cube{}, fmt.Errorf("%w: more than 54 facelets", ErrInvalidFaceletCount)
		}
		tokens[i/9][i%9/3][i%3] = string(r)
		i++
	}
	if i != 54 {
		return Cube{}, fmt.Errorf("%w: got %d facelets, want 54", ErrInvalidFaceletCount, i)
	}
	return FromArray(tokens)
}
