// Package perm implements small fixed-size permutations mapping cubicles
// (positions) to the cubies that occupy them.
package perm

import "fmt"

// MaxSize is the largest supported permutation, the number of edge cubicles.
const MaxSize = 12

// Parity is the sign of a permutation.
type Parity int8

const (
	Even Parity = 1
	Odd  Parity = -1
)

func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return "?"
	}
}

// Permutation maps cubicle index -> cubie index. The zero value is unusable;
// build one with New or NewWithMapping. Permutations are plain values and
// compare with ==.
type Permutation struct {
	cubies [MaxSize]uint8
	size   uint8
}

// New returns the identity permutation over size cubicles.
func New(size int) Permutation {
	checkSize(size)
	p := Permutation{size: uint8(size)}
	for i := 0; i < size; i++ {
		p.cubies[i] = uint8(i)
	}
	return p
}

// NewWithMapping builds a permutation from an explicit cubicle -> cubie
// mapping. The mapping must be a bijection on [0, len(mapping)).
func NewWithMapping(mapping []uint8) Permutation {
	checkSize(len(mapping))
	p := Permutation{size: uint8(len(mapping))}
	var seen uint16
	for i, cubie := range mapping {
		if int(cubie) >= len(mapping) || seen&(1<<cubie) != 0 {
			panic(fmt.Sprintf("perm: mapping %v is not a bijection", mapping))
		}
		seen |= 1 << cubie
		p.cubies[i] = cubie
	}
	return p
}

func checkSize(size int) {
	if size <= 0 || size > MaxSize {
		panic(fmt.Sprintf("perm: size %d out of range (1..%d)", size, MaxSize))
	}
}

func (p *Permutation) check(cubicle int) {
	if cubicle < 0 || cubicle >= int(p.size) {
		panic(fmt.Sprintf("perm: cubicle %d out of range for size %d", cubicle, p.size))
	}
}

// Size returns the number of cubicles.
func (p Permutation) Size() int {
	return int(p.size)
}

// CubieIn returns the cubie occupying the given cubicle.
func (p Permutation) CubieIn(cubicle int) int {
	p.check(cubicle)
	return int(p.cubies[cubicle])
}

// cubicleOf returns the cubicle currently holding the given cubie.
func (p Permutation) cubicleOf(cubie int) int {
	p.check(cubie)
	for i := 0; i < int(p.size); i++ {
		if int(p.cubies[i]) == cubie {
			return i
		}
	}
	panic("perm: unreachable, permutation is not a bijection")
}

// SwapFour cycles the contents of four cubicles: the cubie in a moves to b,
// b to c, c to d and d back to a. Passing (d, c, b, a) reverses the cycle.
func (p *Permutation) SwapFour(a, b, c, d int) {
	p.check(a)
	p.check(b)
	p.check(c)
	p.check(d)
	p.cubies[a], p.cubies[b], p.cubies[c], p.cubies[d] = p.cubies[d], p.cubies[a], p.cubies[b], p.cubies[c]
}

// SwapTwo exchanges the contents of two cubicles.
func (p *Permutation) SwapTwo(a, b int) {
	p.check(a)
	p.check(b)
	p.cubies[a], p.cubies[b] = p.cubies[b], p.cubies[a]
}

// Parity returns the sign of the permutation. A cycle of length k needs k-1
// transpositions, so the parity is (size - number of cycles) mod 2.
func (p Permutation) Parity() Parity {
	var visited uint16
	cycles := 0
	for start := 0; start < int(p.size); start++ {
		if visited&(1<<start) != 0 {
			continue
		}
		cycles++
		for i := start; visited&(1<<i) == 0; i = int(p.cubies[i]) {
			visited |= 1 << i
		}
	}
	if (int(p.size)-cycles)%2 == 0 {
		return Even
	}
	return Odd
}

// Inverse returns the cubie -> cubicle mapping as a permutation.
func (p Permutation) Inverse() Permutation {
	inv := Permutation{size: p.size}
	for cubie := 0; cubie < int(p.size); cubie++ {
		inv.cubies[cubie] = uint8(p.cubicleOf(cubie))
	}
	return inv
}

// Mapping returns a copy of the cubicle -> cubie mapping.
func (p Permutation) Mapping() []uint8 {
	out := make([]uint8, p.size)
	copy(out, p.cubies[:p.size])
	return out
}

// IsIdentity reports whether every cubie is in its home cubicle.
func (p Permutation) IsIdentity() bool {
	for i := 0; i < int(p.size); i++ {
		if int(p.cubies[i]) != i {
			return false
		}
	}
	return true
}
