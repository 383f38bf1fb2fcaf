package dataset

import (
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"

	rubikscube "github.com/h4rr9/rubiks-cube"
)

// Env is a reinforcement-learning environment: observations are one-hot
// states, actions are turn indices under a metric and the reward is 1 when
// a step solves the cube.
type Env struct {
	metric      rubikscube.Metric
	scrambleLen int
	rng         *rand.Rand
	cube        rubikscube.Cube
}

// NewEnv creates an environment scrambled scrambleLen turns from solved.
func NewEnv(metric rubikscube.Metric, scrambleLen int, seed uint64) *Env {
	e := &Env{
		metric:      metric,
		scrambleLen: scrambleLen,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	e.Reset()
	return e
}

// NumActions returns the size of the action space.
func (e *Env) NumActions() int {
	return e.metric.NumActions()
}

// Reset scrambles a fresh cube and returns the first observation.
func (e *Env) Reset() *bitset.BitSet {
	e.cube = rubikscube.Scramble(e.scrambleLen, e.rng, rubikscube.WithMetric(e.metric))
	return e.cube.Representation()
}

// Step applies an action. done is true once the cube is solved.
func (e *Env) Step(action int) (obs *bitset.BitSet, reward float64, done bool, err error) {
	t, err := e.metric.Action(action)
	if err != nil {
		return nil, 0, false, err
	}
	e.cube.Turn(t)
	done = e.cube.IsSolved()
	if done {
		reward = 1
	}
	return e.cube.Representation(), reward, done, nil
}

// Cube returns the current state.
func (e *Env) Cube() rubikscube.Cube {
	return e.cube
}

// Render returns the net diagram of the current state.
func (e *Env) Render() string {
	return e.cube.String()
}
