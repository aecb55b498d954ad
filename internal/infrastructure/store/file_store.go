// Package store persists the session pair on disk. It is the web-tier
// analogue of the browser's two localStorage entries: one opaque token and
// one serialized user record, always handled as a pair.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// persistedState mirrors the two storage keys of the original client.
type persistedState struct {
	Token string          `json:"auth_token"`
	User  json.RawMessage `json:"auth_user"`
}

// FileStore writes the pair as one small JSON document, replaced atomically
// via rename so a crash never leaves a token without its user record.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the persisted pair. A missing file is the signed-out state,
// not an error. A file that cannot be parsed is reported as an error so the
// caller can discard it.
func (s *FileStore) Read() (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("read session state: %w", err)
	}

	var state persistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return "", nil, fmt.Errorf("parse session state: %w", err)
	}
	return state.Token, []byte(state.User), nil
}

// Write persists both values in one atomic replace.
func (s *FileStore) Write(token string, user []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	raw, err := json.Marshal(persistedState{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session state: %w", err)
	}
	return nil
}

// Clear removes both values. Clearing an already-empty store is a no-op.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session state: %w", err)
	}
	return nil
}
