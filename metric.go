package rubikscube

import (
	"fmt"
	"strings"
)

// Metric is a turn-counting convention. It fixes which generators count as
// a single action and what each turn costs.
type Metric uint8

const (
	// HalfTurnMetric counts every face turn, quarter or half, as one.
	HalfTurnMetric Metric = iota
	// QuarterTurnMetric counts quarter turns as one and half turns as two.
	QuarterTurnMetric
)

func (m Metric) String() string {
	switch m {
	case HalfTurnMetric:
		return "htm"
	case QuarterTurnMetric:
		return "qtm"
	default:
		return "?"
	}
}

// ParseMetric accepts "htm"/"half" and "qtm"/"quarter", in any case.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "htm", "half", "halfturn":
		return HalfTurnMetric, nil
	case "qtm", "quarter", "quarterturn":
		return QuarterTurnMetric, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMetric, s)
}

// NumActions returns the number of single-action generators.
func (m Metric) NumActions() int {
	if m == QuarterTurnMetric {
		return 12
	}
	return NumTurns
}

// Turns returns the generators that count as one action, in index order.
func (m Metric) Turns() []Turn {
	return AllTurns()[:m.NumActions()]
}

// Action maps an action index to its turn. Quarter-turn indices coincide
// with the first 12 turn indices.
func (m Metric) Action(idx int) (Turn, error) {
	if idx < 0 || idx >= m.NumActions() {
		return 0, fmt.Errorf("%w: action %d out of range for %s (%d actions)", ErrInvalidTurn, idx, m, m.NumActions())
	}
	return Turn(idx), nil
}

// Cost returns the length of t under the metric.
func (m Metric) Cost(t Turn) int {
	if m == QuarterTurnMetric && t.Direction() == Half {
		return 2
	}
	return 1
}

// Count returns the total length of a turn sequence under the metric.
func (m Metric) Count(turns []Turn) int {
	n := 0
	for _, t := range turns {
		n += m.Cost(t)
	}
	return n
}
