// Package cli implements the rubikscube command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/h4rr9/rubiks-cube/internal/session"
	"github.com/h4rr9/rubiks-cube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool

	log = logrus.New()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubikscube",
	Short: "3x3x3 Rubik's cube state engine",
	Long: `rubikscube models the state of a 3x3x3 Rubik's cube.

Apply turns, decode facelet arrays and check that they are reachable,
generate one-hot encoded training datasets, play with a cube in the
terminal, or mirror a GoCube smart cube over Bluetooth.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(cmd.ErrOrStderr())
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubikscube/rubikscube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// resolveDBPath picks the database from the flag, the state file or the
// default location, in that order.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if sf, err := session.NewDefaultStateFile(); err == nil && sf.State().DBPath != "" {
		return sf.State().DBPath, nil
	}
	return storage.DefaultDBPath()
}

func openDB() (*storage.DB, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("opening database")
	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
