// Package orientation stores per-cubie twist values packed into a single
// word. Edges flip (mod 2) and corners twist (mod 3).
package orientation

import (
	"fmt"
	"math/bits"
)

// Set holds one orientation value per cubie, each in [0, Modulus).
// Values are packed width bits apart so a Set is a comparable value.
type Set struct {
	bits    uint32
	size    uint8
	modulus uint8
	width   uint8
}

// New returns a set of size cubies, all at orientation 0.
func New(size, modulus int) Set {
	if modulus < 2 || modulus > 255 {
		panic(fmt.Sprintf("orientation: modulus %d out of range", modulus))
	}
	width := bits.Len(uint(modulus - 1))
	if size <= 0 || size*width > 32 {
		panic(fmt.Sprintf("orientation: %d values of %d bits do not fit in 32 bits", size, width))
	}
	return Set{size: uint8(size), modulus: uint8(modulus), width: uint8(width)}
}

// NewEdgeSet returns the 12-cubie, mod 2 set used for edges.
func NewEdgeSet() Set { return New(12, 2) }

// NewCornerSet returns the 8-cubie, mod 3 set used for corners.
func NewCornerSet() Set { return New(8, 3) }

func (s Set) Size() int    { return int(s.size) }
func (s Set) Modulus() int { return int(s.modulus) }

func (s *Set) check(cubie int) {
	if cubie < 0 || cubie >= int(s.size) {
		panic(fmt.Sprintf("orientation: cubie %d out of range for size %d", cubie, s.size))
	}
}

func (s Set) mask() uint32 {
	return 1<<s.width - 1
}

// At returns the orientation of cubie.
func (s Set) At(cubie int) int {
	s.check(cubie)
	return int(s.bits >> (uint(cubie) * uint(s.width)) & s.mask())
}

// Set overwrites the orientation of cubie. value must be below the modulus.
func (s *Set) Set(cubie, value int) {
	s.check(cubie)
	if value < 0 || value >= int(s.modulus) {
		panic(fmt.Sprintf("orientation: value %d out of range for modulus %d", value, s.modulus))
	}
	shift := uint(cubie) * uint(s.width)
	s.bits = s.bits&^(s.mask()<<shift) | uint32(value)<<shift
}

// Add increases the orientation of cubie by delta, modulo the modulus.
func (s *Set) Add(cubie, delta int) {
	if delta < 0 || delta >= int(s.modulus) {
		panic(fmt.Sprintf("orientation: delta %d out of range for modulus %d", delta, s.modulus))
	}
	s.Set(cubie, (s.At(cubie)+delta)%int(s.modulus))
}

// AddOne is Add(cubie, 1).
func (s *Set) AddOne(cubie int) { s.Add(cubie, 1) }

// AddTwo is Add(cubie, 2). Only meaningful for moduli above 2.
func (s *Set) AddTwo(cubie int) { s.Add(cubie, 2) }

// Sum returns the plain sum of all orientations, not reduced.
func (s Set) Sum() int {
	sum := 0
	for i := 0; i < int(s.size); i++ {
		sum += s.At(i)
	}
	return sum
}

// Values returns the orientations indexed by cubie.
func (s Set) Values() []uint8 {
	out := make([]uint8, s.size)
	for i := range out {
		out[i] = uint8(s.At(i))
	}
	return out
}
