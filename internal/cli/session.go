package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	rubikscube "github.com/h4rr9/rubiks-cube"
	"github.com/h4rr9/rubiks-cube/internal/analysis"
	"github.com/h4rr9/rubiks-cube/internal/session"
	"github.com/h4rr9/rubiks-cube/internal/storage"
)

var (
	sessionMetric string
	undoCount     int
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Work on a cube that persists between invocations",
	Long: `The working cube lives in ~/.rubikscube/state.json. Turn it, undo turns,
show it or reset it to solved. Recorded play and track sessions are kept in
the database and can be listed and shown.`,
	Args: cobra.NoArgs,
	RunE: runSessionShow,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the working cube",
	Args:  cobra.NoArgs,
	RunE:  runSessionShow,
}

var sessionTurnCmd = &cobra.Command{
	Use:   "turn <turns>",
	Short: "Turn the working cube",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSessionTurn,
}

var sessionUndoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last turns on the working cube",
	Args:  cobra.NoArgs,
	RunE:  runSessionUndo,
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the working cube to solved",
	Args:  cobra.NoArgs,
	RunE:  runSessionReset,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionLogCmd = &cobra.Command{
	Use:   "log <session-id>",
	Short: "Show the turns of a recorded session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionLog,
}

func init() {
	sessionResetCmd.Flags().StringVar(&sessionMetric, "metric", "htm", "Turn metric for counting: htm or qtm")
	sessionUndoCmd.Flags().IntVarP(&undoCount, "count", "n", 1, "Number of turns to undo")
	sessionListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum sessions to list")

	sessionCmd.AddCommand(sessionShowCmd, sessionTurnCmd, sessionUndoCmd, sessionResetCmd, sessionListCmd, sessionLogCmd)
	rootCmd.AddCommand(sessionCmd)
}

func loadState() (*session.StateFile, error) {
	sf, err := session.NewDefaultStateFile()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return sf, nil
}

func printTracker(cmd *cobra.Command, t *rubikscube.Tracker) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, t.CubeString())
	history := t.History()
	if len(history) == 0 {
		fmt.Fprintln(out, "History: none")
	} else {
		fmt.Fprintf(out, "History: %s\n", rubikscube.FormatTurns(history))
		if merged := rubikscube.MergeTurns(history); len(merged) < len(history) {
			fmt.Fprintf(out, "Merged:  %s\n", rubikscube.FormatTurns(merged))
		}
	}
	c := t.Cube()
	fmt.Fprintf(out, "Turns: %d (%s)  Solvable: %t  Solved: %t\n", t.TurnCount(), t.Metric(), c.IsSolvable(), c.IsSolved())
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	sf, err := loadState()
	if err != nil {
		return err
	}
	t, err := sf.Tracker()
	if err != nil {
		return err
	}
	printTracker(cmd, t)
	return nil
}

func runSessionTurn(cmd *cobra.Command, args []string) error {
	turns, err := rubikscube.ParseTurns(strings.Join(args, " "))
	if err != nil {
		return err
	}
	sf, err := loadState()
	if err != nil {
		return err
	}
	t, err := sf.Tracker()
	if err != nil {
		return err
	}
	t.OnSolved(func(n int) {
		fmt.Fprintf(cmd.OutOrStdout(), "Solved after %d turns!\n", n)
	})
	t.Apply(turns...)
	if err := sf.SaveTracker(t); err != nil {
		return err
	}
	log.WithField("turns", rubikscube.FormatTurns(turns)).Debug("turned working cube")
	printTracker(cmd, t)
	return nil
}

func runSessionUndo(cmd *cobra.Command, args []string) error {
	sf, err := loadState()
	if err != nil {
		return err
	}
	t, err := sf.Tracker()
	if err != nil {
		return err
	}
	var undone []rubikscube.Turn
	for i := 0; i < undoCount; i++ {
		turn, ok := t.Undo()
		if !ok {
			break
		}
		undone = append(undone, turn)
	}
	if len(undone) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo")
		return nil
	}
	if err := sf.SaveTracker(t); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Undid %s\n", rubikscube.FormatTurns(undone))
	printTracker(cmd, t)
	return nil
}

func runSessionReset(cmd *cobra.Command, args []string) error {
	metric, err := rubikscube.ParseMetric(sessionMetric)
	if err != nil {
		return err
	}
	sf, err := loadState()
	if err != nil {
		return err
	}
	if err := sf.Reset(metric); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Working cube reset to solved")
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := storage.NewSessionRepository(db).List(cmd.Context(), listLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No sessions")
		return nil
	}
	fmt.Fprintf(out, "%-36s  %-19s  %-6s  %-16s  %s\n", "ID", "STARTED", "SOURCE", "DEVICE", "SOLVED")
	for _, s := range list {
		device := "-"
		if s.DeviceName != nil {
			device = *s.DeviceName
		}
		fmt.Fprintf(out, "%-36s  %-19s  %-6s  %-16s  %t\n",
			s.SessionID, s.StartedAt.Local().Format(time.DateTime), s.Source, device, s.Solved)
	}
	return nil
}

func runSessionLog(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	ctx := cmd.Context()
	s, err := repo.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("session %s: %w", args[0], err)
	}
	rows, err := repo.Turns(ctx, s.SessionID)
	if err != nil {
		return err
	}

	start := rubikscube.New()
	if s.StartState != "" {
		if start, err = rubikscube.ParseFacelets(s.StartState); err != nil {
			return fmt.Errorf("session %s start state: %w", s.SessionID, err)
		}
	}
	t := rubikscube.TrackCube(start)
	timed := make([]analysis.TimedTurn, 0, len(rows))
	out := cmd.OutOrStdout()
	for _, row := range rows {
		turn, err := rubikscube.ParseTurn(row.Turn)
		if err != nil {
			return fmt.Errorf("session %s turn %d: %w", s.SessionID, row.Seq, err)
		}
		t.Turn(turn)
		timed = append(timed, analysis.TimedTurn{Turn: turn, TsMs: row.TsMs})
		fmt.Fprintf(out, "%4d  %8s  %s\n", row.Seq, (time.Duration(row.TsMs) * time.Millisecond).String(), turn)
	}
	printTracker(cmd, t)
	printSummary(cmd, timed)
	return nil
}

func printSummary(cmd *cobra.Command, turns []analysis.TimedTurn) {
	if len(turns) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	sum := analysis.Summarize(turns)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Duration: %s  TPS: %.2f  Avg gap: %.0fms\n",
		(time.Duration(sum.DurationMs) * time.Millisecond).String(), sum.TPS, sum.AvgTurnGapMs)
	fmt.Fprintf(out, "Turns: %d htm, %d qtm, %d merged (%.0f%% efficient)\n",
		sum.HalfTurns, sum.QuarterTurns, sum.MergedTurns, sum.Efficiency*100)
	fmt.Fprintf(out, "Pauses over %dms: %d  Longest: %dms\n", analysis.PauseThresholdMs, sum.PauseCount, sum.LongestPauseMs)
	fmt.Fprintf(out, "Most used face: %s\n", sum.MostUsedFace)

	report := analysis.MineNGrams(turns, 4, 8, 3)
	for n := 4; n <= 8; n++ {
		for _, g := range report.TopNGrams[n] {
			fmt.Fprintf(out, "Repeated x%d: %s\n", g.Count, g.Sequence)
		}
	}
}
