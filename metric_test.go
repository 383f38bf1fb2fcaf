package rubikscube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricActions(t *testing.T) {
	require.Equal(t, 18, HalfTurnMetric.NumActions())
	require.Equal(t, 12, QuarterTurnMetric.NumActions())
	require.Len(t, QuarterTurnMetric.Turns(), 12)
	for _, turn := range QuarterTurnMetric.Turns() {
		require.NotEqual(t, Half, turn.Direction())
	}

	turn, err := QuarterTurnMetric.Action(11)
	require.NoError(t, err)
	require.Equal(t, DPrime, turn)

	_, err = QuarterTurnMetric.Action(12)
	require.ErrorIs(t, err, ErrInvalidTurn)
	turn, err = HalfTurnMetric.Action(12)
	require.NoError(t, err)
	require.Equal(t, L2, turn)
}

func TestMetricCount(t *testing.T) {
	turns := []Turn{R, U2, FPrime, D2}
	require.Equal(t, 4, HalfTurnMetric.Count(turns))
	require.Equal(t, 6, QuarterTurnMetric.Count(turns))
	require.Zero(t, QuarterTurnMetric.Count(nil))
}

func TestParseMetric(t *testing.T) {
	for in, want := range map[string]Metric{
		"htm":     HalfTurnMetric,
		"HTM":     HalfTurnMetric,
		"qtm":     QuarterTurnMetric,
		"quarter": QuarterTurnMetric,
	} {
		got, err := ParseMetric(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseMetric("stm")
	require.ErrorIs(t, err, ErrInvalidMetric)
	require.Equal(t, "qtm", QuarterTurnMetric.String())
}

type fixedSampler []int

func (s *fixedSampler) IntN(n int) int {
	v := (*s)[0] % n
	*s = (*s)[1:]
	return v
}

func TestRandomTurnsUsesMetric(t *testing.T) {
	s := fixedSampler{17, 16, 5}
	require.Equal(t, []Turn{D2, U2, D}, RandomTurns(3, &s))

	s = fixedSampler{7, 12}
	require.Equal(t, []Turn{RPrime, L}, RandomTurns(2, &s, WithMetric(QuarterTurnMetric)))
}
