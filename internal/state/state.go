// Package state persists reading positions across sessions, keyed by a
// content hash of the uploaded document bytes.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const (
	stateFileName = "reading_positions.json"
	hashBytes     = 8192 // First 8KB for content hash
)

// Position stores the cursor for a single document.
type Position struct {
	PageIndex int `json:"page_index"`
	WordIndex int `json:"word_index"`
}

// Store manages persistent reading positions.
type Store struct {
	path string
	data map[string]Position
	mu   sync.RWMutex
}

// NewStore creates or loads state from XDG_STATE_HOME/rsvp/
func NewStore() (*Store, error) {
	dir := getStateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	store := &Store{
		path: filepath.Join(dir, stateFileName),
		data: make(map[string]Position),
	}
	if err := store.load(); err != nil {
		// Non-fatal - start with empty state
		store.data = make(map[string]Position)
	}
	return store, nil
}

// getStateDir returns XDG_STATE_HOME/rsvp or ~/.local/state/rsvp
func getStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "rsvp")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "rsvp")
}

// ComputeHash generates a content hash identifying a document's bytes.
func ComputeHash(data []byte) string {
	if len(data) > hashBytes {
		data = data[:hashBytes]
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16]) // First 16 bytes = 32 hex chars
}

// GetPosition returns the saved position for a document, or the zero
// position if none is saved.
func (s *Store) GetPosition(hash string) Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[hash]
}

// SetPosition saves the position for a document.
func (s *Store) SetPosition(hash string, pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[hash] = pos
	return s.save()
}

// Clear removes the saved position for a document.
func (s *Store) Clear(hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, hash)
	return s.save()
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
