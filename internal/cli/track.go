package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	rubikscube "github.com/h4rr9/rubiks-cube"
	"github.com/h4rr9/rubiks-cube/internal/ble"
)

var (
	scanTimeout  time.Duration
	scanAttempts int
	trackDevice  string
	trackRecord  bool
	trackMetric  string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for GoCube smart cubes",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Mirror a GoCube smart cube in the terminal",
	Long: `Connect to a GoCube over Bluetooth and mirror its turns on the cube shown
in the terminal. Start with the physical cube solved, or press x to tell the
cube its current state is solved.`,
	Args: cobra.NoArgs,
	RunE: runTrack,
}

func init() {
	for _, c := range []*cobra.Command{scanCmd, trackCmd} {
		c.Flags().DurationVar(&scanTimeout, "timeout", 5*time.Second, "Scan duration")
		c.Flags().IntVar(&scanAttempts, "attempts", 3, "Scan attempts before giving up")
	}
	trackCmd.Flags().StringVar(&trackDevice, "device", "", "Device ID to connect to (default: last used, else first found)")
	trackCmd.Flags().BoolVar(&trackRecord, "record", true, "Record the session in the database")
	trackCmd.Flags().StringVar(&trackMetric, "metric", "htm", "Turn metric for counting: htm or qtm")
	rootCmd.AddCommand(scanCmd, trackCmd)
}

// scanWithRetry scans until at least one cube answers or attempts run out.
func scanWithRetry(ctx context.Context, w io.Writer, client *ble.Client) ([]ble.ScanResult, error) {
	fmt.Fprintln(w, "Scanning for GoCube devices...")
	for attempt := 1; attempt <= scanAttempts; attempt++ {
		results, err := client.Scan(ctx, scanTimeout)
		if err != nil {
			fmt.Fprintf(w, "Scan %d failed: %v\n", attempt, err)
			continue
		}
		if len(results) > 0 {
			return results, nil
		}
		if attempt < scanAttempts {
			fmt.Fprintf(w, "Scan %d: no devices found, retrying...\n", attempt)
		}
	}
	return nil, ble.ErrDeviceNotFound
}

func runScan(cmd *cobra.Command, args []string) error {
	client, err := ble.NewClient(log)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	results, err := scanWithRetry(cmd.Context(), out, client)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(out, "%-20s  %4d dBm  %s\n", r.Name, r.RSSI, r.ID())
	}
	return nil
}

func runTrack(cmd *cobra.Command, args []string) error {
	metric, err := rubikscube.ParseMetric(trackMetric)
	if err != nil {
		return err
	}
	sf, err := loadState()
	if err != nil {
		return err
	}
	client, err := ble.NewClient(log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	results, err := scanWithRetry(ctx, out, client)
	if err != nil {
		return err
	}

	want := trackDevice
	if want == "" {
		want = sf.State().LastDeviceID
	}
	target := results[0]
	for _, r := range results {
		if r.ID() == want {
			target = r
			break
		}
	}

	// Turns arrive on the BLE callback goroutine; the TUI drains them.
	feed := make(chan []rubikscube.Turn, 100)
	client.OnTurns(func(turns []rubikscube.Turn) {
		select {
		case feed <- turns:
		default:
			log.WithField("turns", rubikscube.FormatTurns(turns)).Warn("turn buffer full, dropping")
		}
	})

	fmt.Fprintf(out, "Connecting to %s...\n", target.Name)
	if err := client.Connect(target); err != nil {
		return err
	}
	defer client.Disconnect()
	if err := sf.SetLastDevice(target.ID(), target.Name); err != nil {
		log.WithError(err).Warn("failed to save last device")
	}

	seed := uint64(time.Now().UnixNano())
	m := newCubeModel(rubikscube.NewTracker(rubikscube.WithMetric(metric)), rand.New(rand.NewPCG(seed, seed)), 0)
	m.feed = feed
	m.deviceName = client.DeviceName()
	m.battery = client.Battery
	m.onReset = client.ResetSolved

	if trackRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		if m.rec, err = newRecorder(ctx, db, "track", m.deviceName, m.tracker.Cube()); err != nil {
			return err
		}
	}
	return m.run()
}
