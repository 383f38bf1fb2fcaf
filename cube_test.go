package rubikscube

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !c.IsSolvable() {
		t.Error("New cube should be solvable")
	}
}

func TestSingleTurnBreaksSolved(t *testing.T) {
	for _, turn := range AllTurns() {
		c := New()
		c.Turn(turn)
		if c.IsSolved() {
			t.Errorf("cube should not be solved after %s", turn)
		}
		if !c.IsSolvable() {
			t.Errorf("cube should stay solvable after %s", turn)
		}
	}
}

func TestTurnR(t *testing.T) {
	c := New()
	c.Turn(R)

	// R carries cubicle 2 -> 1 -> 5 -> 6 -> 2 for corners.
	wantCorners := map[int][2]int{1: {2, 1}, 5: {1, 2}, 6: {5, 1}, 2: {6, 2}}
	for cubicle, want := range wantCorners {
		cubie, twist := c.CornerAt(cubicle)
		require.Equal(t, want, [2]int{cubie, twist}, "corner cubicle %d", cubicle)
	}
	// and 1 -> 5 -> 9 -> 6 -> 1 for edges, each flipped.
	wantEdges := map[int]int{5: 1, 9: 5, 6: 9, 1: 6}
	for cubicle, want := range wantEdges {
		cubie, flip := c.EdgeAt(cubicle)
		require.Equal(t, want, cubie, "edge cubicle %d", cubicle)
		require.Equal(t, 1, flip, "edge cubicle %d", cubicle)
	}
	for _, cubicle := range []int{0, 3, 4, 7} {
		cubie, twist := c.CornerAt(cubicle)
		require.Equal(t, cubicle, cubie)
		require.Zero(t, twist)
	}
}

func TestUDTurnsKeepOrientation(t *testing.T) {
	c := New()
	c.Apply(U, D, UPrime, D2, U2, DPrime)
	require.Zero(t, c.edgeFlips.Sum())
	require.Zero(t, c.cornerTwists.Sum())
}

func TestHalfTurnsKeepOrientation(t *testing.T) {
	c := New()
	c.Apply(L2, R2, F2, B2, U2, D2, R2, F2)
	require.Zero(t, c.edgeFlips.Sum())
	require.Zero(t, c.cornerTwists.Sum())
}

func TestFBTurnsKeepEdgeFlips(t *testing.T) {
	c := New()
	c.Apply(F, B, FPrime, B, F, BPrime)
	require.Zero(t, c.edgeFlips.Sum())
	require.NotZero(t, c.cornerTwists.Sum())
}

func TestInverseLaw(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	start := Scramble(30, rng)
	for _, turn := range AllTurns() {
		c := start
		c.Turn(turn)
		c.Turn(turn.Inverse())
		require.Equal(t, start, c, "%s then %s", turn, turn.Inverse())
	}
}

func TestOrderLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	start := Scramble(25, rng)
	for _, turn := range AllTurns() {
		reps := 4
		if turn.Direction() == Half {
			reps = 2
		}
		c := start
		for i := 0; i < reps; i++ {
			if i > 0 && c == start {
				t.Fatalf("%s returned to start after %d turns", turn, i)
			}
			c.Turn(turn)
		}
		if c != start {
			t.Errorf("%s x %d should return to start", turn, reps)
			t.Log(c.String())
		}
	}
}

func TestURRPrimeUPrime_SevenTimes(t *testing.T) {
	c := New()
	for i := 0; i < 7; i++ {
		c.Apply(U, R, RPrime, UPrime)
	}
	if !c.IsSolved() {
		t.Error("(U R R' U')^7 should return to solved")
		t.Log(c.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := New()
	for i := 0; i < 6; i++ {
		if i > 0 && c.IsSolved() {
			t.Fatalf("solved after only %d repetitions", i)
		}
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("(R U R' U')^6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	c := New()
	c.Apply(TPerm...)
	require.False(t, c.IsSolved())
	require.True(t, c.IsSolvable())
	c.Apply(TPerm...)
	require.True(t, c.IsSolved())
}

func TestSuperflip(t *testing.T) {
	c := New()
	c.Apply(Superflip...)
	for i := 0; i < 12; i++ {
		cubie, flip := c.EdgeAt(i)
		require.Equal(t, i, cubie)
		require.Equal(t, 1, flip)
	}
	for i := 0; i < 8; i++ {
		cubie, twist := c.CornerAt(i)
		require.Equal(t, i, cubie)
		require.Zero(t, twist)
	}
	require.True(t, c.IsSolvable())
}

func TestApplyNotation(t *testing.T) {
	c := New()
	require.NoError(t, c.ApplyNotation("R U R' U'"))

	want := New()
	want.Apply(SexyMove...)
	require.True(t, c.Equal(want))

	before := c
	err := c.ApplyNotation("R U X")
	require.ErrorIs(t, err, ErrInvalidTurn)
	require.Equal(t, before, c, "a failed parse must not apply any turn")
}

func TestInvalidTurnPanics(t *testing.T) {
	c := New()
	require.Panics(t, func() { c.Turn(Turn(NumTurns)) })
}

func TestRandomScrambleInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 1))
	for i := 0; i < 200; i++ {
		c := New()
		turns := c.Scramble(1+rng.IntN(60), rng)
		require.Equal(t, c.EdgeParity(), c.CornerParity(), FormatTurns(turns))
		require.Zero(t, c.edgeFlips.Sum()%2, FormatTurns(turns))
		require.Zero(t, c.cornerTwists.Sum()%3, FormatTurns(turns))
		require.True(t, c.IsSolvable())

		c.Apply(InvertTurns(turns)...)
		require.True(t, c.IsSolved(), FormatTurns(turns))
	}
}

func TestSingleTwistIsUnsolvable(t *testing.T) {
	c := New()
	c.cornerTwists.AddOne(0)
	require.False(t, c.IsSolvable())

	c = New()
	c.edgeFlips.AddOne(3)
	require.False(t, c.IsSolvable())

	c = New()
	c.edges.SwapTwo(0, 1)
	require.False(t, c.IsSolvable())
	c.corners.SwapTwo(0, 1)
	require.True(t, c.IsSolvable())
}

func TestCubeIsAValue(t *testing.T) {
	a := New()
	b := a
	b.Turn(F)
	require.True(t, a.IsSolved())
	require.False(t, a.Equal(b))
}

func TestStringNet(t *testing.T) {
	want := "" +
		"       Y Y Y\n" +
		"       Y Y Y\n" +
		"       Y Y Y\n" +
		"R R R  G G G  O O O  B B B\n" +
		"R R R  G G G  O O O  B B B\n" +
		"R R R  G G G  O O O  B B B\n" +
		"       W W W\n" +
		"       W W W\n" +
		"       W W W\n"
	require.Equal(t, want, New().String())
}

func BenchmarkTurn(b *testing.B) {
	c := New()
	turns := AllTurns()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Turn(turns[i%NumTurns])
	}
}

func BenchmarkRepresentation(b *testing.B) {
	c := Scramble(50, rand.New(rand.NewPCG(1, 2)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Representation()
	}
}
