package rubikscube

// Tracker wraps a Cube with turn history, a turn count under a metric and
// solved detection.
type Tracker struct {
	cube     Cube
	cfg      *config
	history  []Turn
	count    int
	solved   bool
	callback func(turns int)
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker(opts ...Option) *Tracker {
	return &Tracker{
		cube:   New(),
		cfg:    newConfig(opts),
		solved: true,
	}
}

// TrackCube creates a tracker starting from an existing state.
func TrackCube(c Cube, opts ...Option) *Tracker {
	t := NewTracker(opts...)
	t.cube = c
	t.solved = c.IsSolved()
	return t
}

// OnSolved sets a callback that fires when a turn takes an unsolved cube to
// the solved state. It receives the turn count at that moment.
func (t *Tracker) OnSolved(cb func(turns int)) {
	t.callback = cb
}

// Reset returns to a solved cube and clears history and count.
func (t *Tracker) Reset() {
	t.cube = New()
	t.history = nil
	t.count = 0
	t.solved = true
}

// Turn applies a turn and checks for a solve.
func (t *Tracker) Turn(turn Turn) {
	t.cube.Turn(turn)
	t.count += t.cfg.metric.Cost(turn)
	if t.cfg.history {
		t.history = append(t.history, turn)
	}
	t.checkSolved()
}

// Apply applies several turns.
func (t *Tracker) Apply(turns ...Turn) {
	for _, turn := range turns {
		t.Turn(turn)
	}
}

// Undo reverts the most recent turn. It returns false when there is no
// history to undo.
func (t *Tracker) Undo() (Turn, bool) {
	if len(t.history) == 0 {
		return 0, false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.cube.Turn(last.Inverse())
	t.count -= t.cfg.metric.Cost(last)
	t.solved = t.cube.IsSolved()
	return last, true
}

func (t *Tracker) checkSolved() {
	now := t.cube.IsSolved()
	// Only the transition into solved is reported.
	if now && !t.solved && t.callback != nil {
		t.callback(t.count)
	}
	t.solved = now
}

// History returns a copy of the recorded turns.
func (t *Tracker) History() []Turn {
	out := make([]Turn, len(t.history))
	copy(out, t.history)
	return out
}

// TurnCount returns the number of turns applied under the tracker's metric.
func (t *Tracker) TurnCount() int {
	return t.count
}

// Metric returns the tracker's turn metric.
func (t *Tracker) Metric() Metric {
	return t.cfg.metric
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.solved
}

// Cube returns a copy of the current state.
func (t *Tracker) Cube() Cube {
	return t.cube
}

// CubeString returns the net diagram of the current state.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
