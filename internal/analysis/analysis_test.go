package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	rubikscube "github.com/h4rr9/rubiks-cube"
)

func timed(turns []rubikscube.Turn, gapMs int64) []TimedTurn {
	out := make([]TimedTurn, len(turns))
	for i, t := range turns {
		out[i] = TimedTurn{Turn: t, TsMs: int64(i) * gapMs}
	}
	return out
}

func TestRollingHashMatchesFreshHash(t *testing.T) {
	seq := []rubikscube.Turn{rubikscube.R, rubikscube.U, rubikscube.RPrime, rubikscube.UPrime, rubikscube.F2}

	rolled := NewRollingHash(3)
	for _, turn := range seq {
		rolled.Roll(turn)
	}
	fresh := NewRollingHash(3)
	for _, turn := range seq[2:] {
		fresh.Roll(turn)
	}
	require.True(t, rolled.Ready())
	require.Equal(t, fresh.Hash(), rolled.Hash())
	require.Equal(t, seq[2:], rolled.Window())
}

func TestMineNGramsFindsRepeatedTrigger(t *testing.T) {
	var seq []rubikscube.Turn
	for i := 0; i < 3; i++ {
		seq = append(seq, rubikscube.SexyMove...)
		seq = append(seq, rubikscube.F)
	}
	report := MineNGrams(timed(seq, 100), 4, 4, 3)

	grams := report.TopNGrams[4]
	require.NotEmpty(t, grams)
	require.Equal(t, "R U R' U'", grams[0].Sequence)
	require.Equal(t, 3, grams[0].Count)
	require.Equal(t, []Occurrence{{0, 0}, {5, 500}, {10, 1000}}, grams[0].Occurrences)
}

func TestMineNGramsShortInput(t *testing.T) {
	report := MineNGrams(timed([]rubikscube.Turn{rubikscube.R}, 10), 2, 5, 3)
	require.Empty(t, report.TopNGrams)
}

func TestMineNGramsNonPositiveLength(t *testing.T) {
	seq := []rubikscube.Turn{rubikscube.R, rubikscube.R, rubikscube.U}
	var report *NGramReport
	require.NotPanics(t, func() { report = MineNGrams(timed(seq, 10), 0, 2, 3) })
	require.NotContains(t, report.TopNGrams, 0)
	require.Equal(t, "R", report.TopNGrams[1][0].Sequence)
	require.Equal(t, 2, report.TopNGrams[1][0].Count)
	require.Empty(t, MineNGrams(timed(seq, 10), -3, 0, 3).TopNGrams)
}

func TestSummarize(t *testing.T) {
	turns := []TimedTurn{
		{rubikscube.R, 0},
		{rubikscube.R, 200},
		{rubikscube.U2, 400},
		{rubikscube.RPrime, 2400},
		{rubikscube.F, 2600},
	}
	s := Summarize(turns)

	require.Equal(t, 5, s.HalfTurns)
	require.Equal(t, 6, s.QuarterTurns)
	require.Equal(t, 4, s.MergedTurns) // R2 U2 R' F
	require.InDelta(t, 0.8, s.Efficiency, 1e-9)
	require.Equal(t, int64(2600), s.DurationMs)
	require.InDelta(t, 5/2.6, s.TPS, 1e-9)
	require.InDelta(t, 650, s.AvgTurnGapMs, 1e-9)
	require.Equal(t, int64(2000), s.LongestPauseMs)
	require.Equal(t, 1, s.PauseCount)
	require.Equal(t, rubikscube.FaceR, s.MostUsedFace)
	require.Equal(t, 3, s.FaceCounts[rubikscube.FaceR])
}

func TestSummarizeEmpty(t *testing.T) {
	require.Equal(t, Summary{}, Summarize(nil))
	require.Zero(t, CalculateTPS(3, 0))
}
