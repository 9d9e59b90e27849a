// Package ledger maintains the bounded, persisted record of past prediction
// sessions. The ledger lives in a single JSON file under the workspace dot-dir
// and always holds the most recent sessions first. History is best-effort
// auxiliary state: a missing or corrupt file reads as empty, and a failed write
// never interrupts the prediction flow.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"vitaldeck/internal/logging"
	"vitaldeck/internal/patient"
)

// DefaultCapacity is the number of sessions retained when no override is
// configured.
const DefaultCapacity = 10

// FileName is the ledger file inside the workspace dot-dir.
const FileName = "history.json"

// Manager handles loading, appending and persisting the session history.
type Manager struct {
	mu       sync.RWMutex
	path     string
	capacity int
	sessions []patient.Session
}

// NewManager creates a ledger manager rooted at the given dot-dir with the
// default capacity.
func NewManager(dir string) *Manager {
	return NewManagerWithCapacity(dir, DefaultCapacity)
}

// NewManagerWithCapacity creates a ledger manager with an explicit retention
// cap. Caps below 1 fall back to the default.
func NewManagerWithCapacity(dir string, capacity int) *Manager {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Manager{
		path:     filepath.Join(dir, FileName),
		capacity: capacity,
	}
}

// Path returns the backing file path.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the history from disk. Absence and corruption both yield an empty
// ledger; corruption is logged but never surfaced to the caller.
func (m *Manager) Load() []patient.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = nil

	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.LedgerWarn("history read failed, starting empty: %v", err)
		}
		return nil
	}

	var sessions []patient.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		logging.LedgerWarn("history file corrupt, starting empty: %v", err)
		return nil
	}

	m.sessions = sessions
	return m.snapshotLocked()
}

// Append inserts the session at the head, trims the tail beyond capacity,
// persists the whole sequence and returns it. A persistence failure is logged
// and otherwise ignored so that losing history never blocks a live prediction.
func (m *Manager) Append(s patient.Session) []patient.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = append([]patient.Session{s}, m.sessions...)
	if len(m.sessions) > m.capacity {
		m.sessions = m.sessions[:m.capacity]
	}

	if err := m.persistLocked(); err != nil {
		logging.LedgerWarn("history write failed, keeping in-memory copy: %v", err)
	}

	return m.snapshotLocked()
}

// Sessions returns a copy of the current in-memory history, newest first.
func (m *Manager) Sessions() []patient.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Clear drops all history, in memory and on disk.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = nil
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove history file: %w", err)
	}
	return nil
}

// persistLocked writes the full sequence through a temp file and rename so a
// partial write is never visible under the ledger path.
func (m *Manager) persistLocked() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(m.sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp history file: %w", err)
	}
	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

func (m *Manager) snapshotLocked() []patient.Session {
	if len(m.sessions) == 0 {
		return nil
	}
	out := make([]patient.Session, len(m.sessions))
	copy(out, m.sessions)
	return out
}

// Line formats one session for the history list.
func Line(s patient.Session) string {
	risks := "No High Risk"
	if flagged := s.Assessment.HighRisks(); len(flagged) > 0 {
		names := make([]string, len(flagged))
		for i, c := range flagged {
			names[i] = c.Title()
		}
		risks = strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s → %s: %s", s.Timestamp, s.Input.Name, risks)
}

// Lines renders the whole ledger, newest first. The result replaces any prior
// rendering in full; there is no incremental diffing.
func Lines(sessions []patient.Session) []string {
	lines := make([]string, len(sessions))
	for i, s := range sessions {
		lines[i] = Line(s)
	}
	return lines
}
