package rubikscube

import "github.com/h4rr9/rubiks-cube/internal/facelet"

// Color is a sticker color. Its value is also the index of the face with
// that center in a facelet array.
type Color = facelet.Color

const (
	White  = facelet.White  // Down
	Yellow = facelet.Yellow // Up
	Green  = facelet.Green  // Front
	Blue   = facelet.Blue   // Back
	Red    = facelet.Red    // Left
	Orange = facelet.Orange // Right
)

// Facelets is a 6x3x3 array of sticker colors indexed [face][row][col] with
// faces in Color order.
//
// Row and column directions follow the usual unfolded net: the Yellow face is
// seen from above with Green at the bottom edge, the four side faces are seen
// from outside with Yellow at the top edge, and the White face is seen from
// below with Green at the top edge.
type Facelets [6][3][3]Color

// SolvedFacelets returns the facelet array of a solved cube.
func SolvedFacelets() Facelets {
	var f Facelets
	for face := range f {
		for row := range f[face] {
			for col := range f[face][row] {
				f[face][row][col] = Color(face)
			}
		}
	}
	return f
}

// Tokens converts the array into single-letter color tokens, the form
// accepted by FromArray.
func (f Facelets) Tokens() [6][3][3]string {
	var out [6][3][3]string
	for face := range f {
		for row := range f[face] {
			for col := range f[face][row] {
				out[face][row][col] = f[face][row][col].String()
			}
		}
	}
	return out
}

// String returns the 54 color letters face by face in row-major order.
func (f Facelets) String() string {
	b := make([]byte, 0, 54)
	for face := range f {
		for row := range f[face] {
			for _, c := range f[face][row] {
				b = append(b, c.String()[0])
			}
		}
	}
	return string(b)
}
