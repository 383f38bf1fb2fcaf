package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is a recorded sequence of turns on one cube, typed in the TUI or
// streamed from a smart cube.
type Session struct {
	SessionID  string
	StartedAt  time.Time
	EndedAt    *time.Time
	Source     string // "play" or "track"
	DeviceName *string
	StartState string // facelet letters of the starting state
	Solved     bool
}

// SessionTurn is one turn within a session.
type SessionTurn struct {
	Seq  int
	Turn string
	TsMs int64 // milliseconds since the session started
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a session and returns its ID.
func (r *SessionRepository) Create(ctx context.Context, source, deviceName, startState string) (string, error) {
	id := uuid.New().String()

	var devicePtr *string
	if deviceName != "" {
		devicePtr = &deviceName
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (session_id, started_at, source, device_name, start_state)
		VALUES (?, ?, ?, ?, ?)
	`, id, time.Now().UTC().Format(time.RFC3339Nano), source, devicePtr, startState)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// AddTurn appends a turn to a session.
func (r *SessionRepository) AddTurn(ctx context.Context, sessionID string, t SessionTurn) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_turns (session_id, seq, turn, ts_ms)
		VALUES (?, ?, ?, ?)
	`, sessionID, t.Seq, t.Turn, t.TsMs)
	if err != nil {
		return fmt.Errorf("failed to add turn: %w", err)
	}
	return nil
}

// End closes a session.
func (r *SessionRepository) End(ctx context.Context, sessionID string, solved bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET ended_at = ?, solved = ? WHERE session_id = ?
	`, time.Now().UTC().Format(time.RFC3339Nano), solved, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT session_id, started_at, ended_at, source, device_name, start_state, solved
		FROM sessions WHERE session_id = ?
	`, sessionID)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List retrieves recent sessions.
func (r *SessionRepository) List(ctx context.Context, limit int) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, started_at, ended_at, source, device_name, start_state, solved
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// Turns returns a session's turns in order.
func (r *SessionRepository) Turns(ctx context.Context, sessionID string) ([]SessionTurn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT seq, turn, ts_ms FROM session_turns
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get turns: %w", err)
	}
	defer rows.Close()

	var turns []SessionTurn
	for rows.Next() {
		var t SessionTurn
		if err := rows.Scan(&t.Seq, &t.Turn, &t.TsMs); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

func scanSession(s scanner) (*Session, error) {
	var sess Session
	var startedAt string
	var endedAt sql.NullString
	if err := s.Scan(&sess.SessionID, &startedAt, &endedAt, &sess.Source, &sess.DeviceName, &sess.StartState, &sess.Solved); err != nil {
		return nil, err
	}
	sess.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
	if endedAt.Valid {
		t, _ := time.Parse(time.RFC3339Nano, endedAt.String)
		sess.EndedAt = &t
	}
	return &sess, nil
}
