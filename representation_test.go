package rubikscube

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepresentationSolved(t *testing.T) {
	b := New().Representation()
	require.Equal(t, uint(RepresentationSize), b.Len())
	require.Equal(t, uint(20), b.Count())

	for c := 0; c < 8; c++ {
		require.True(t, b.Test(uint(24*c+3*c)), "corner %d", c)
	}
	for e := 0; e < 12; e++ {
		require.True(t, b.Test(uint(192+24*e+2*e)), "edge %d", e)
	}
}

func TestRepresentationOneBitPerCubie(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 9))
	for i := 0; i < 100; i++ {
		b := Scramble(20, rng).Representation()
		require.Equal(t, uint(20), b.Count())
		for block := uint(0); block < 20; block++ {
			n := 0
			for bit := block * 24; bit < (block+1)*24; bit++ {
				if b.Test(bit) {
					n++
				}
			}
			require.Equal(t, 1, n, "block %d", block)
		}
	}
}

func TestRepresentationAfterR(t *testing.T) {
	c := New()
	c.Turn(R)
	b := c.Representation()
	// corner cubie 2 sits in cubicle 1 with twist 1
	require.True(t, b.Test(24*2+3*1+1))
	// edge cubie 1 sits in cubicle 5 flipped
	require.True(t, b.Test(192+24*1+2*5+1))
	require.False(t, b.Test(192+24*1+2*1))
}

func TestRepresentationDistinguishesStates(t *testing.T) {
	a, b := New(), New()
	b.Turn(U)
	require.False(t, a.Representation().Equal(b.Representation()))
	b.Turn(UPrime)
	require.True(t, a.Representation().Equal(b.Representation()))
}

func TestFeatures(t *testing.T) {
	f := New().Features()
	require.Len(t, f, RepresentationSize)
	var sum float32
	for _, v := range f {
		sum += v
	}
	require.Equal(t, float32(20), sum)
	require.Equal(t, float32(1), f[0])
}
