package facelet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordsPointAtHomeFaces(t *testing.T) {
	for i, c := range Corners {
		for j, at := range CornerCoords[i] {
			require.Equal(t, c[j], Color(at.Face), "corner %d facelet %d", i, j)
			require.NotEqual(t, [2]uint8{1, 1}, [2]uint8{at.Row, at.Col}, "corner %d uses a center", i)
		}
	}
	for i, e := range Edges {
		for j, at := range EdgeCoords[i] {
			require.Equal(t, e[j], Color(at.Face), "edge %d facelet %d", i, j)
		}
	}
}

func TestCoordsCoverEveryStickerOnce(t *testing.T) {
	seen := map[Coord]bool{}
	for _, coords := range CornerCoords {
		for _, at := range coords {
			require.False(t, seen[at], "duplicate coord %+v", at)
			seen[at] = true
		}
	}
	for _, coords := range EdgeCoords {
		for _, at := range coords {
			require.False(t, seen[at], "duplicate coord %+v", at)
			seen[at] = true
		}
	}
	// 54 stickers minus 6 fixed centers.
	require.Len(t, seen, 48)
}

func TestMatchCornerRecoversOrientation(t *testing.T) {
	for i, c := range Corners {
		for o := 0; o < 3; o++ {
			cubie, orientation := MatchCorner(c.Oriented(o))
			require.Equal(t, i, cubie)
			require.Equal(t, o, orientation)
		}
	}
}

func TestMatchEdgeRecoversOrientation(t *testing.T) {
	for i, e := range Edges {
		for o := 0; o < 2; o++ {
			cubie, orientation := MatchEdge(e.Oriented(o))
			require.Equal(t, i, cubie)
			require.Equal(t, o, orientation)
		}
	}
}

func TestMatchPanicsOnImpossibleColors(t *testing.T) {
	require.Panics(t, func() { MatchCorner(Corner{White, White, Green}) })
	require.Panics(t, func() { MatchCorner(Corner{White, Yellow, Green}) })
	require.Panics(t, func() { MatchEdge(Edge{Red, Orange}) })
}

func TestParseColor(t *testing.T) {
	for c := Color(0); c < NumColors; c++ {
		got, ok := ParseColor(c.String())
		require.True(t, ok)
		require.Equal(t, c, got)
	}
	_, ok := ParseColor("P")
	require.False(t, ok)
	_, ok = ParseColor("WW")
	require.False(t, ok)
}
