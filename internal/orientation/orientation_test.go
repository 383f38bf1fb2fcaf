package orientation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSetsAreZero(t *testing.T) {
	for _, s := range []Set{NewEdgeSet(), NewCornerSet()} {
		require.Zero(t, s.Sum())
		for i := 0; i < s.Size(); i++ {
			require.Zero(t, s.At(i))
		}
	}
	require.Equal(t, 12, NewEdgeSet().Size())
	require.Equal(t, 2, NewEdgeSet().Modulus())
	require.Equal(t, 8, NewCornerSet().Size())
	require.Equal(t, 3, NewCornerSet().Modulus())
}

func TestNewRejectsBadShape(t *testing.T) {
	require.Panics(t, func() { New(12, 1) })
	require.Panics(t, func() { New(17, 3) })
	require.Panics(t, func() { New(0, 2) })
}

func TestEdgeFlipWraps(t *testing.T) {
	s := NewEdgeSet()
	s.AddOne(11)
	require.Equal(t, 1, s.At(11))
	require.Equal(t, 1, s.Sum())
	s.AddOne(11)
	require.Equal(t, 0, s.At(11))
	require.Panics(t, func() { s.AddTwo(0) })
}

func TestCornerTwistWraps(t *testing.T) {
	s := NewCornerSet()
	s.AddTwo(7)
	require.Equal(t, 2, s.At(7))
	s.AddOne(7)
	require.Equal(t, 0, s.At(7))
	s.AddTwo(0)
	s.AddTwo(1)
	s.AddTwo(2)
	require.Equal(t, 6, s.Sum())
	require.Zero(t, s.Sum()%3)
}

func TestNeighboursUntouched(t *testing.T) {
	s := NewCornerSet()
	s.Set(3, 2)
	require.Equal(t, []uint8{0, 0, 0, 2, 0, 0, 0, 0}, s.Values())
	s.Set(3, 1)
	require.Equal(t, []uint8{0, 0, 0, 1, 0, 0, 0, 0}, s.Values())
}

func TestOutOfRange(t *testing.T) {
	s := NewCornerSet()
	require.Panics(t, func() { s.At(8) })
	require.Panics(t, func() { s.Set(0, 3) })
	require.Panics(t, func() { s.Add(0, -1) })
}

func TestComparable(t *testing.T) {
	a, b := NewEdgeSet(), NewEdgeSet()
	a.AddOne(4)
	require.False(t, a == b)
	b.AddOne(4)
	require.True(t, a == b)
}
