package facelet

import "fmt"

const (
	NumCorners = 8
	NumEdges   = 12
)

// Corner lists a corner cubie's colors: the Yellow/White facelet first, then
// the other two in clockwise order seen from outside the cube.
type Corner [3]Color

// Edge lists an edge cubie's colors, primary facelet first.
type Edge [2]Color

// Coord addresses one facelet in a 6x3x3 array.
type Coord struct {
	Face, Row, Col uint8
}

// Corners is the catalog of corner cubies. Cubie i is at home in cubicle i.
var Corners = [NumCorners]Corner{
	{Yellow, Red, Blue},
	{Yellow, Blue, Orange},
	{Yellow, Orange, Green},
	{Yellow, Green, Red},
	{White, Blue, Red},
	{White, Orange, Blue},
	{White, Green, Orange},
	{White, Red, Green},
}

// Edges is the catalog of edge cubies. Cubie i is at home in cubicle i.
var Edges = [NumEdges]Edge{
	{Yellow, Blue},
	{Yellow, Orange},
	{Yellow, Green},
	{Yellow, Red},
	{Red, Blue},
	{Orange, Blue},
	{Orange, Green},
	{Red, Green},
	{White, Blue},
	{White, Orange},
	{White, Green},
	{White, Red},
}

// CornerCoords gives, per corner cubicle, where its facelets sit in the array,
// in the same order as the colors of the cubie that lives there when solved.
var CornerCoords = [NumCorners][3]Coord{
	{{1, 0, 0}, {4, 0, 0}, {3, 0, 2}},
	{{1, 0, 2}, {3, 0, 0}, {5, 0, 2}},
	{{1, 2, 2}, {5, 0, 0}, {2, 0, 2}},
	{{1, 2, 0}, {2, 0, 0}, {4, 0, 2}},
	{{0, 2, 0}, {3, 2, 2}, {4, 2, 0}},
	{{0, 2, 2}, {5, 2, 2}, {3, 2, 0}},
	{{0, 0, 2}, {2, 2, 2}, {5, 2, 0}},
	{{0, 0, 0}, {4, 2, 2}, {2, 2, 0}},
}

// EdgeCoords gives, per edge cubicle, where its two facelets sit in the array.
var EdgeCoords = [NumEdges][2]Coord{
	{{1, 0, 1}, {3, 0, 1}},
	{{1, 1, 2}, {5, 0, 1}},
	{{1, 2, 1}, {2, 0, 1}},
	{{1, 1, 0}, {4, 0, 1}},
	{{4, 1, 0}, {3, 1, 2}},
	{{5, 1, 2}, {3, 1, 0}},
	{{5, 1, 0}, {2, 1, 2}},
	{{4, 1, 2}, {2, 1, 0}},
	{{0, 2, 1}, {3, 2, 1}},
	{{0, 1, 2}, {5, 2, 1}},
	{{0, 0, 1}, {2, 2, 1}},
	{{0, 1, 0}, {4, 2, 1}},
}

// Oriented returns the colors seen in a cubicle's facelet slots when this
// cubie sits there with orientation o, i.e. the primary color lands in slot o.
func (c Corner) Oriented(o int) Corner {
	o %= 3
	return Corner{c[(3-o)%3], c[(4-o)%3], c[(5-o)%3]}
}

// Oriented returns the colors seen in a cubicle's two slots for orientation o.
func (e Edge) Oriented(o int) Edge {
	if o%2 == 1 {
		return Edge{e[1], e[0]}
	}
	return e
}

func colorSet(colors ...Color) uint8 {
	var set uint8
	for _, c := range colors {
		set |= 1 << c
	}
	return set
}

// MatchCorner identifies the corner cubie showing the observed colors and the
// slot its primary color occupies. Colors that match no cubie mean the input
// cannot come from any cube; the catalog treats that as fatal.
func MatchCorner(observed Corner) (cubie, orientation int) {
	want := colorSet(observed[:]...)
	for i, c := range Corners {
		if colorSet(c[:]...) != want {
			continue
		}
		for slot, color := range observed {
			if color == c[0] {
				return i, slot
			}
		}
	}
	panic(fmt.Sprintf("facelet: no corner cubie has colors %s%s%s", observed[0], observed[1], observed[2]))
}

// MatchEdge is the edge counterpart of MatchCorner.
func MatchEdge(observed Edge) (cubie, orientation int) {
	want := colorSet(observed[:]...)
	for i, e := range Edges {
		if colorSet(e[:]...) != want {
			continue
		}
		if observed[0] == e[0] {
			return i, 0
		}
		return i, 1
	}
	panic(fmt.Sprintf("facelet: no edge cubie has colors %s%s", observed[0], observed[1]))
}
