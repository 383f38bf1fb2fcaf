// Package facelet holds the static cubie catalog: the six sticker colors, the
// color tuples of the 8 corner and 12 edge cubies, and the coordinates their
// facelets occupy in a 6x3x3 facelet array.
package facelet

// Color is a sticker color. Its value doubles as the index of the face whose
// center carries it.
type Color uint8

const (
	White  Color = 0 // Down face
	Yellow Color = 1 // Up face
	Green  Color = 2 // Front face
	Blue   Color = 3 // Back face
	Red    Color = 4 // Left face
	Orange Color = 5 // Right face
)

// NumColors is the number of distinct sticker colors (and faces).
const NumColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the six sticker colors.
func (c Color) Valid() bool {
	return c < NumColors
}

// ParseColor parses a single-letter color token (W, Y, G, B, R, O).
// Lower-case letters are accepted.
func ParseColor(s string) (Color, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch s[0] {
	case 'W', 'w':
		return White, true
	case 'Y', 'y':
		return Yellow, true
	case 'G', 'g':
		return Green, true
	case 'B', 'b':
		return Blue, true
	case 'R', 'r':
		return Red, true
	case 'O', 'o':
		return Orange, true
	}
	return 0, false
}
