package gateway

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"
)

// sessionState is the on-disk shape of session.json.
type sessionState struct {
	ID           string    `json:"id"`
	LastActivity time.Time `json:"last_activity"`
}

// SessionFile persists the resumable model session id to a single
// process-local file. One writer (the gateway); readers tolerate the
// file being absent.
type SessionFile struct {
	path string
	mu   sync.Mutex
}

// NewSessionFile creates a session store at path.
func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Load returns the stored session id, or "" when none is stored.
func (s *SessionFile) Load() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return ""
	}
	return state.ID
}

// Save stores id with the current timestamp.
func (s *SessionFile) Save(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sessionState{ID: id, LastActivity: time.Now()})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the stored session. Missing files are not an error.
func (s *SessionFile) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
