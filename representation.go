package rubikscube

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/h4rr9/rubiks-cube/internal/facelet"
)

const (
	// RepresentationSize is the width of the one-hot state encoding.
	RepresentationSize = cornerBits + edgeBits

	cornerBits = facelet.NumCorners * 24
	edgeBits   = facelet.NumEdges * 24
)

// Representation one-hot encodes the state into RepresentationSize bits.
//
// Every cubie owns a block of 24 bits holding one (cubicle, orientation)
// pair: corner cubie c in cubicle i with twist o sets bit 24*c + 3*i + o,
// edge cubie e in cubicle i with flip o sets bit 192 + 24*e + 2*i + o.
// Exactly 20 bits are set.
func (c Cube) Representation() *bitset.BitSet {
	b := bitset.New(RepresentationSize)
	for i := 0; i < facelet.NumCorners; i++ {
		cubie, o := c.CornerAt(i)
		b.Set(uint(24*cubie + 3*i + o))
	}
	for i := 0; i < facelet.NumEdges; i++ {
		cubie, o := c.EdgeAt(i)
		b.Set(uint(cornerBits + 24*cubie + 2*i + o))
	}
	return b
}

// Features returns the representation as 0/1 values, one per bit.
func (c Cube) Features() []float32 {
	out := make([]float32, RepresentationSize)
	b := c.Representation()
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out[i] = 1
	}
	return out
}
