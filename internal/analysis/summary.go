// Package analysis computes statistics over recorded turn sequences: pace,
// pauses, face usage and repeated patterns.
package analysis

import (
	rubikscube "github.com/h4rr9/rubiks-cube"
)

// TimedTurn is a turn with its offset from the start of the session.
type TimedTurn struct {
	Turn rubikscube.Turn
	TsMs int64
}

// PauseThresholdMs is the gap after which the solver is considered stopped.
const PauseThresholdMs = 1500

// Summary holds statistics for one session.
type Summary struct {
	HalfTurns      int             `json:"half_turns"`
	QuarterTurns   int             `json:"quarter_turns"`
	MergedTurns    int             `json:"merged_turns"` // after cancelling and combining same-face runs
	Efficiency     float64         `json:"efficiency"`   // merged / half turns
	DurationMs     int64           `json:"duration_ms"`
	TPS            float64         `json:"tps"`
	AvgTurnGapMs   float64         `json:"avg_turn_gap_ms"`
	LongestPauseMs int64           `json:"longest_pause_ms"`
	PauseCount     int             `json:"pause_count"`  // gaps over PauseThresholdMs
	FaceCounts     [6]int          `json:"face_counts"`  // indexed by Face
	MostUsedFace   rubikscube.Face `json:"most_used_face"`
}

// PauseInfo is a gap between two consecutive turns.
type PauseInfo struct {
	AfterIndex int   `json:"after_index"`
	DurationMs int64 `json:"duration_ms"`
	TsMs       int64 `json:"ts_ms"`
}

// Summarize computes the statistics of a turn sequence.
func Summarize(turns []TimedTurn) Summary {
	var s Summary
	if len(turns) == 0 {
		return s
	}

	plain := Turns(turns)
	s.HalfTurns = rubikscube.HalfTurnMetric.Count(plain)
	s.QuarterTurns = rubikscube.QuarterTurnMetric.Count(plain)
	s.MergedTurns = len(rubikscube.MergeTurns(plain))
	s.Efficiency = float64(s.MergedTurns) / float64(s.HalfTurns)

	s.DurationMs = turns[len(turns)-1].TsMs - turns[0].TsMs
	s.TPS = CalculateTPS(len(turns), s.DurationMs)
	s.AvgTurnGapMs = AvgTurnGap(turns)
	s.LongestPauseMs = LongestPause(turns)
	s.PauseCount = len(FindPauses(turns, PauseThresholdMs))

	for _, t := range plain {
		s.FaceCounts[t.Face()]++
	}
	for f, n := range s.FaceCounts {
		if n > s.FaceCounts[s.MostUsedFace] {
			s.MostUsedFace = rubikscube.Face(f)
		}
	}
	return s
}

// Turns drops the timestamps.
func Turns(turns []TimedTurn) []rubikscube.Turn {
	out := make([]rubikscube.Turn, len(turns))
	for i, tt := range turns {
		out[i] = tt.Turn
	}
	return out
}

// FindPauses returns every gap of at least thresholdMs.
func FindPauses(turns []TimedTurn, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo
	for i := 1; i < len(turns); i++ {
		gap := turns[i].TsMs - turns[i-1].TsMs
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{AfterIndex: i - 1, DurationMs: gap, TsMs: turns[i-1].TsMs})
		}
	}
	return pauses
}

// CalculateTPS returns turns per second.
func CalculateTPS(turns int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(turns) / (float64(durationMs) / 1000.0)
}

// AvgTurnGap returns the mean time between consecutive turns.
func AvgTurnGap(turns []TimedTurn) float64 {
	if len(turns) < 2 {
		return 0
	}
	return float64(turns[len(turns)-1].TsMs-turns[0].TsMs) / float64(len(turns)-1)
}

// LongestPause returns the longest gap between consecutive turns.
func LongestPause(turns []TimedTurn) int64 {
	var longest int64
	for i := 1; i < len(turns); i++ {
		if gap := turns[i].TsMs - turns[i-1].TsMs; gap > longest {
			longest = gap
		}
	}
	return longest
}
