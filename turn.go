package rubikscube

import (
	"fmt"
	"strings"
)

// Face identifies the layer a turn rotates. Each face is named by its
// position relative to a viewer holding the cube Yellow up, Green front.
type Face uint8

const (
	FaceL Face = iota // Left (Red)
	FaceR             // Right (Orange)
	FaceF             // Front (Green)
	FaceB             // Back (Blue)
	FaceU             // Up (Yellow)
	FaceD             // Down (White)
)

const numFaces = 6

func (f Face) String() string {
	switch f {
	case FaceL:
		return "L"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// Color returns the center color of the face.
func (f Face) Color() Color {
	return faceColors[f]
}

var faceColors = [numFaces]Color{
	FaceL: Red,
	FaceR: Orange,
	FaceF: Green,
	FaceB: Blue,
	FaceU: Yellow,
	FaceD: White,
}

// FaceOf returns the face whose center carries c.
func FaceOf(c Color) Face {
	for f, fc := range faceColors {
		if fc == c {
			return Face(f)
		}
	}
	panic(fmt.Sprintf("rubikscube: no face has color %d", c))
}

// Direction is the sense and amount of a turn, viewed facing the layer.
type Direction uint8

const (
	Clockwise        Direction = iota // 90 degrees
	CounterClockwise                  // -90 degrees
	Half                              // 180 degrees
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	case Half:
		return "half"
	default:
		return "?"
	}
}

// Turn is one of the 18 face-turn generators. The numeric values are stable
// and used as action indices.
type Turn uint8

const (
	L Turn = iota
	R
	F
	B
	U
	D
	LPrime
	RPrime
	FPrime
	BPrime
	UPrime
	DPrime
	L2
	R2
	F2
	B2
	U2
	D2
)

// NumTurns is the size of the generator set.
const NumTurns = 18

// NewTurn builds the turn of face f in direction d.
func NewTurn(f Face, d Direction) Turn {
	return Turn(uint8(d)*numFaces + uint8(f))
}

// TurnFromIndex converts an action index in [0, NumTurns) to a Turn.
func TurnFromIndex(idx int) (Turn, error) {
	if idx < 0 || idx >= NumTurns {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidTurn, idx, NumTurns)
	}
	return Turn(idx), nil
}

// AllTurns returns the 18 generators in index order.
func AllTurns() []Turn {
	turns := make([]Turn, NumTurns)
	for i := range turns {
		turns[i] = Turn(i)
	}
	return turns
}

// Valid reports whether t is one of the 18 generators.
func (t Turn) Valid() bool {
	return t < NumTurns
}

// Face returns the layer the turn rotates.
func (t Turn) Face() Face {
	return Face(t % numFaces)
}

// Direction returns the sense of the turn.
func (t Turn) Direction() Direction {
	return Direction(t / numFaces)
}

// Inverse returns the turn that undoes t.
// R becomes R', R' becomes R, R2 stays R2.
func (t Turn) Inverse() Turn {
	switch t.Direction() {
	case Clockwise:
		return NewTurn(t.Face(), CounterClockwise)
	case CounterClockwise:
		return NewTurn(t.Face(), Clockwise)
	}
	return t
}

// String returns the standard notation: R, R', R2.
func (t Turn) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Turn(%d)", uint8(t))
	}
	switch t.Direction() {
	case CounterClockwise:
		return t.Face().String() + "'"
	case Half:
		return t.Face().String() + "2"
	}
	return t.Face().String()
}

// ParseTurn parses a standard notation string into a Turn.
// Examples: R, R', R2, u, U`, U2'
func ParseTurn(s string) (Turn, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTurn)
	}

	var face Face
	switch s[0] {
	case 'L', 'l':
		face = FaceL
	case 'R', 'r':
		face = FaceR
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, s)
	}

	dir := Clockwise
	switch s[1:] {
	case "":
	case "'", "`", "’":
		dir = CounterClockwise
	case "2", "2'", "2`":
		dir = Half
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, s)
	}

	return NewTurn(face, dir), nil
}

// ParseTurns parses a whitespace-separated sequence of turns.
// Example: "R U R' U'"
func ParseTurns(s string) ([]Turn, error) {
	parts := strings.Fields(s)
	turns := make([]Turn, 0, len(parts))
	for i, part := range parts {
		t, err := ParseTurn(part)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i+1, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// FormatTurns formats turns as a space-separated notation string.
func FormatTurns(turns []Turn) string {
	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// InvertTurns returns the sequence that undoes turns.
func InvertTurns(turns []Turn) []Turn {
	out := make([]Turn, len(turns))
	for i, t := range turns {
		out[len(turns)-1-i] = t.Inverse()
	}
	return out
}

// layer lists the cubicles a face turn moves. A clockwise turn carries the
// contents of each cubicle to the next one in the list. Corner twists are
// applied +1, +2, +1, +2 in list order.
type layer struct {
	edges   [4]int
	corners [4]int
}

var layers = [numFaces]layer{
	FaceL: {edges: [4]int{3, 7, 11, 4}, corners: [4]int{0, 3, 7, 4}},
	FaceR: {edges: [4]int{1, 5, 9, 6}, corners: [4]int{2, 1, 5, 6}},
	FaceF: {edges: [4]int{2, 6, 10, 7}, corners: [4]int{6, 7, 3, 2}},
	FaceB: {edges: [4]int{0, 4, 8, 5}, corners: [4]int{1, 0, 4, 5}},
	FaceU: {edges: [4]int{0, 1, 2, 3}, corners: [4]int{0, 1, 2, 3}},
	FaceD: {edges: [4]int{8, 11, 10, 9}, corners: [4]int{4, 7, 6, 5}},
}

// cornerTwists is the orientation delta for each corner of a quarter turn
// of L, R, F or B, in layer order.
var cornerTwists = [4]int{1, 2, 1, 2}

// quarters returns the clockwise quarter-turn count of t (1, 2 or 3).
func (t Turn) quarters() int {
	switch t.Direction() {
	case CounterClockwise:
		return 3
	case Half:
		return 2
	}
	return 1
}

// MergeTurns combines runs of turns on the same face.
// R R becomes R2, R R R becomes R', R R' cancels out.
func MergeTurns(turns []Turn) []Turn {
	result := make([]Turn, 0, len(turns))
	for _, t := range turns {
		if n := len(result); n > 0 && result[n-1].Face() == t.Face() {
			q := (result[n-1].quarters() + t.quarters()) % 4
			result = result[:n-1]
			switch q {
			case 1:
				result = append(result, NewTurn(t.Face(), Clockwise))
			case 2:
				result = append(result, NewTurn(t.Face(), Half))
			case 3:
				result = append(result, NewTurn(t.Face(), CounterClockwise))
			}
			continue
		}
		result = append(result, t)
	}
	return result
}
