package rubikscube

import "fmt"

// Sampler is a source of uniform integers in [0, n). *math/rand/v2.Rand
// satisfies it.
type Sampler interface {
	IntN(n int) int
}

// RandomTurns draws n turns independently and uniformly from the generators
// of the configured metric (all 18 by default).
func RandomTurns(n int, rng Sampler, opts ...Option) []Turn {
	gens := newConfig(opts).metric.Turns()
	turns := make([]Turn, n)
	for i := range turns {
		turns[i] = gens[rng.IntN(len(gens))]
	}
	return turns
}

// Scramble returns a solved cube after n random turns.
func Scramble(n int, rng Sampler, opts ...Option) Cube {
	c := New()
	c.Scramble(n, rng, opts...)
	return c
}

// Scramble applies n random turns to c and returns them. Every generator
// preserves the equality of edge and corner parity; a mismatch afterwards
// means the turn tables are corrupt and panics.
func (c *Cube) Scramble(n int, rng Sampler, opts ...Option) []Turn {
	turns := RandomTurns(n, rng, opts...)
	c.Apply(turns...)
	if ep, cp := c.edges.Parity(), c.corners.Parity(); ep != cp {
		panic(fmt.Sprintf("rubikscube: parity mismatch after scramble (edges %s, corners %s)", ep, cp))
	}
	return turns
}
