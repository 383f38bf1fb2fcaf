package rubikscube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTurnIndexOrder(t *testing.T) {
	want := "L R F B U D L' R' F' B' U' D' L2 R2 F2 B2 U2 D2"
	require.Equal(t, want, FormatTurns(AllTurns()))
}

func TestTurnFaceAndDirection(t *testing.T) {
	tests := []struct {
		turn Turn
		face Face
		dir  Direction
	}{
		{L, FaceL, Clockwise},
		{DPrime, FaceD, CounterClockwise},
		{F2, FaceF, Half},
		{UPrime, FaceU, CounterClockwise},
	}
	for _, tt := range tests {
		require.Equal(t, tt.face, tt.turn.Face(), tt.turn.String())
		require.Equal(t, tt.dir, tt.turn.Direction(), tt.turn.String())
		require.Equal(t, tt.turn, NewTurn(tt.face, tt.dir))
	}
}

func TestTurnInverse(t *testing.T) {
	require.Equal(t, RPrime, R.Inverse())
	require.Equal(t, R, RPrime.Inverse())
	require.Equal(t, R2, R2.Inverse())
	for _, turn := range AllTurns() {
		require.Equal(t, turn, turn.Inverse().Inverse())
	}
}

func TestParseTurn(t *testing.T) {
	tests := []struct {
		in   string
		want Turn
	}{
		{"R", R},
		{"r", R},
		{"R'", RPrime},
		{"R`", RPrime},
		{"R2", R2},
		{"R2'", R2},
		{" U ", U},
		{"D'", DPrime},
	}
	for _, tt := range tests {
		got, err := ParseTurn(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "X", "R3", "Rw", "M"} {
		_, err := ParseTurn(bad)
		require.ErrorIs(t, err, ErrInvalidTurn, bad)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	turns, err := ParseTurns(scrambleScenario)
	require.NoError(t, err)
	require.Len(t, turns, 25)
	require.Equal(t, scrambleScenario, FormatTurns(turns))

	_, err = ParseTurns("R U Q")
	require.ErrorIs(t, err, ErrInvalidTurn)
}

func TestInvertTurns(t *testing.T) {
	require.Equal(t, []Turn{U, R, UPrime, RPrime}, InvertTurns([]Turn{R, U, RPrime, UPrime}))
	require.Empty(t, InvertTurns(nil))
}

func TestTurnFromIndex(t *testing.T) {
	for i := 0; i < NumTurns; i++ {
		turn, err := TurnFromIndex(i)
		require.NoError(t, err)
		require.Equal(t, Turn(i), turn)
	}
	_, err := TurnFromIndex(18)
	require.ErrorIs(t, err, ErrInvalidTurn)
	_, err = TurnFromIndex(-1)
	require.ErrorIs(t, err, ErrInvalidTurn)
}

func TestFaceColors(t *testing.T) {
	for f := FaceL; f <= FaceD; f++ {
		require.Equal(t, f, FaceOf(f.Color()))
	}
	require.Equal(t, Yellow, FaceU.Color())
	require.Equal(t, Green, FaceF.Color())
}

func TestLayerTables(t *testing.T) {
	edgeSeen := map[int]int{}
	cornerSeen := map[int]int{}
	for _, l := range layers {
		for _, e := range l.edges {
			edgeSeen[e]++
		}
		for _, c := range l.corners {
			cornerSeen[c]++
		}
	}
	// every edge lies on two faces, every corner on three
	require.Len(t, edgeSeen, 12)
	for e, n := range edgeSeen {
		require.Equal(t, 2, n, "edge %d", e)
	}
	require.Len(t, cornerSeen, 8)
	for c, n := range cornerSeen {
		require.Equal(t, 3, n, "corner %d", c)
	}
}

func TestMergeTurns(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"R R", "R2"},
		{"R R R", "R'"},
		{"R R R R", ""},
		{"R R'", ""},
		{"U R R' U'", ""},
		{"R2 R", "R'"},
		{"F U U B", "F U2 B"},
		{"L R", "L R"},
	}
	for _, tt := range tests {
		in, err := ParseTurns(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, FormatTurns(MergeTurns(in)), tt.in)
	}
}
