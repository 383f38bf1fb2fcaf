// Package session keeps the CLI's working cube between invocations in a JSON
// state file.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	rubikscube "github.com/h4rr9/rubiks-cube"
)

// AppState is the persistent CLI state.
type AppState struct {
	DBPath         string `json:"db_path,omitempty"`
	Metric         string `json:"metric,omitempty"`
	Facelets       string `json:"facelets,omitempty"` // 54 color letters; empty means solved
	History        string `json:"history,omitempty"`  // turns applied since the last reset
	LastDeviceID   string `json:"last_device_id,omitempty"`
	LastDeviceName string `json:"last_device_name,omitempty"`
}

// StateFile manages the state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns ~/.rubikscube/state.json.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".rubikscube")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile loads the state at path. A missing file is an empty state.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}
	if err := sf.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return sf, nil
}

// NewDefaultStateFile loads the state file at the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load reads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	return nil
}

// Save writes the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Path returns the state file location.
func (sf *StateFile) Path() string {
	return sf.path
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// SetDBPath sets the database path.
func (sf *StateFile) SetDBPath(path string) error {
	sf.state.DBPath = path
	return sf.Save()
}

// SetLastDevice records the last connected device.
func (sf *StateFile) SetLastDevice(deviceID, deviceName string) error {
	sf.state.LastDeviceID = deviceID
	sf.state.LastDeviceName = deviceName
	return sf.Save()
}

// Metric returns the session metric, half-turn by default.
func (sf *StateFile) Metric() (rubikscube.Metric, error) {
	if sf.state.Metric == "" {
		return rubikscube.HalfTurnMetric, nil
	}
	return rubikscube.ParseMetric(sf.state.Metric)
}

// Tracker rebuilds the working cube with its history.
func (sf *StateFile) Tracker() (*rubikscube.Tracker, error) {
	metric, err := sf.Metric()
	if err != nil {
		return nil, err
	}
	history, err := rubikscube.ParseTurns(sf.state.History)
	if err != nil {
		return nil, fmt.Errorf("corrupt history in %s: %w", sf.path, err)
	}

	end := rubikscube.New()
	if sf.state.Facelets != "" {
		if end, err = rubikscube.ParseFacelets(sf.state.Facelets); err != nil {
			return nil, fmt.Errorf("corrupt cube in %s: %w", sf.path, err)
		}
	}
	// Replay from the start state so Undo can walk back through history.
	start := end
	start.Apply(rubikscube.InvertTurns(history)...)

	t := rubikscube.TrackCube(start, rubikscube.WithMetric(metric))
	t.Apply(history...)
	return t, nil
}

// SaveTracker stores the tracker's cube and history.
func (sf *StateFile) SaveTracker(t *rubikscube.Tracker) error {
	sf.state.Metric = t.Metric().String()
	sf.state.History = rubikscube.FormatTurns(t.History())
	sf.state.Facelets = ""
	if c := t.Cube(); !c.IsSolved() {
		sf.state.Facelets = c.Facelets().String()
	}
	return sf.Save()
}

// Reset clears the working cube and history.
func (sf *StateFile) Reset(metric rubikscube.Metric) error {
	sf.state.Metric = metric.String()
	sf.state.Facelets = ""
	sf.state.History = ""
	return sf.Save()
}
