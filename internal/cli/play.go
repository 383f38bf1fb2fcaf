package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	rubikscube "github.com/h4rr9/rubiks-cube"
	"github.com/h4rr9/rubiks-cube/internal/render"
	"github.com/h4rr9/rubiks-cube/internal/storage"
)

var (
	playRecord   bool
	playMetric   string
	playScramble int
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	turnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn a cube interactively in the terminal",
	Long: `Turn a cube with the keyboard.

  l r f b u d    clockwise turn
  L R F B U D    counter-clockwise turn
  backspace      undo
  s              scramble
  x              reset to solved
  q              quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Record the session in the database")
	playCmd.Flags().StringVar(&playMetric, "metric", "htm", "Turn metric for counting: htm or qtm")
	playCmd.Flags().IntVar(&playScramble, "scramble", 25, "Turns per scramble")
	rootCmd.AddCommand(playCmd)
}

// Messages
type turnsMsg struct{ turns []rubikscube.Turn }

// recorder writes turns of one session to the database.
type recorder struct {
	sessions  *storage.SessionRepository
	sessionID string
	started   time.Time
	seq       int
}

func newRecorder(ctx context.Context, db *storage.DB, source, deviceName string, start rubikscube.Cube) (*recorder, error) {
	repo := storage.NewSessionRepository(db)
	state := ""
	if !start.IsSolved() {
		state = start.Facelets().String()
	}
	id, err := repo.Create(ctx, source, deviceName, state)
	if err != nil {
		return nil, err
	}
	return &recorder{sessions: repo, sessionID: id, started: time.Now()}, nil
}

func (r *recorder) record(ctx context.Context, t rubikscube.Turn) error {
	r.seq++
	return r.sessions.AddTurn(ctx, r.sessionID, storage.SessionTurn{
		Seq:  r.seq,
		Turn: t.String(),
		TsMs: time.Since(r.started).Milliseconds(),
	})
}

func (r *recorder) end(ctx context.Context, solved bool) error {
	return r.sessions.End(ctx, r.sessionID, solved)
}

// cubeModel is the TUI shared by play and track. Turns come from key
// presses or, when feed is set, from a smart cube.
type cubeModel struct {
	tracker  *rubikscube.Tracker
	rng      *rand.Rand
	scramble int
	rec      *recorder

	// Smart cube
	feed       <-chan []rubikscube.Turn
	deviceName string
	battery    func() int
	onReset    func() error

	recent      []rubikscube.Turn
	solvedAfter int
	err         error
	quitting    bool
}

func newCubeModel(tracker *rubikscube.Tracker, rng *rand.Rand, scramble int) *cubeModel {
	m := &cubeModel{
		tracker:     tracker,
		rng:         rng,
		scramble:    scramble,
		solvedAfter: -1,
	}
	tracker.OnSolved(func(turns int) { m.solvedAfter = turns })
	return m
}

func (m *cubeModel) Init() tea.Cmd {
	return m.listenForTurns()
}

func (m *cubeModel) listenForTurns() tea.Cmd {
	if m.feed == nil {
		return nil
	}
	return func() tea.Msg {
		return turnsMsg{turns: <-m.feed}
	}
}

func (m *cubeModel) apply(turns ...rubikscube.Turn) {
	for _, t := range turns {
		m.solvedAfter = -1
		m.tracker.Turn(t)
		if m.rec != nil {
			if err := m.rec.record(context.Background(), t); err != nil {
				m.err = err
			}
		}
	}
	m.recent = append(m.recent, turns...)
	if len(m.recent) > 12 {
		m.recent = m.recent[len(m.recent)-12:]
	}
}

var keyTurns = map[string]rubikscube.Turn{
	"l": rubikscube.L, "r": rubikscube.R, "f": rubikscube.F,
	"b": rubikscube.B, "u": rubikscube.U, "d": rubikscube.D,
	"L": rubikscube.LPrime, "R": rubikscube.RPrime, "F": rubikscube.FPrime,
	"B": rubikscube.BPrime, "U": rubikscube.UPrime, "D": rubikscube.DPrime,
}

func (m *cubeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if t, ok := keyTurns[key]; ok {
			m.apply(t)
			return m, nil
		}
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "backspace":
			if m.feed != nil {
				break
			}
			t, ok := m.tracker.Undo()
			if !ok {
				break
			}
			if len(m.recent) > 0 {
				m.recent = m.recent[:len(m.recent)-1]
			}
			if m.rec != nil {
				if err := m.rec.record(context.Background(), t.Inverse()); err != nil {
					m.err = err
				}
			}
		case "s":
			if m.feed != nil {
				break
			}
			m.tracker.Reset()
			m.recent = nil
			m.apply(rubikscube.RandomTurns(m.scramble, m.rng, rubikscube.WithMetric(m.tracker.Metric()))...)
			m.recent = nil
			m.solvedAfter = -1
		case "x":
			m.tracker.Reset()
			m.recent = nil
			m.solvedAfter = -1
			if m.onReset != nil {
				if err := m.onReset(); err != nil {
					m.err = err
				}
			}
		}

	case turnsMsg:
		m.apply(msg.turns...)
		return m, m.listenForTurns()
	}
	return m, nil
}

func (m *cubeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := "Rubik's Cube"
	if m.deviceName != "" {
		title += " - " + m.deviceName
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(render.Framed(m.tracker.Cube()))
	b.WriteString("\n\n")

	if len(m.recent) > 0 {
		b.WriteString("Last: " + turnStyle.Render(rubikscube.FormatTurns(m.recent)) + "\n")
	}

	c := m.tracker.Cube()
	status := fmt.Sprintf("Turns: %d (%s)  Solvable: %t", m.tracker.TurnCount(), m.tracker.Metric(), c.IsSolvable())
	if m.battery != nil {
		if level := m.battery(); level >= 0 {
			status += fmt.Sprintf("  Battery: %d%%", level)
		}
	}
	if m.rec != nil {
		status += "  Recording"
	}
	b.WriteString(statusStyle.Render(status) + "\n")

	if m.solvedAfter >= 0 {
		b.WriteString(solvedStyle.Render(fmt.Sprintf("Solved in %d turns!", m.solvedAfter)) + "\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	help := "[lrfbud] turn  [LRFBUD] prime  [backspace] undo  [s] scramble  [x] reset  [q] quit"
	if m.feed != nil {
		help = "turn the cube  [x] mark solved  [q] quit"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

// run starts the program and closes the recording when it exits.
func (m *cubeModel) run() error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if m.rec != nil {
		if endErr := m.rec.end(context.Background(), m.tracker.IsSolved()); endErr != nil && err == nil {
			err = endErr
		}
	}
	if err != nil {
		return err
	}
	return m.err
}

func runPlay(cmd *cobra.Command, args []string) error {
	metric, err := rubikscube.ParseMetric(playMetric)
	if err != nil {
		return err
	}
	seed := uint64(time.Now().UnixNano())
	m := newCubeModel(rubikscube.NewTracker(rubikscube.WithMetric(metric)), rand.New(rand.NewPCG(seed, seed)), playScramble)

	if playRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		if m.rec, err = newRecorder(cmd.Context(), db, "play", "", m.tracker.Cube()); err != nil {
			return err
		}
	}
	return m.run()
}
