// Package store persists the small set of boolean flags the widgets remember between
// sessions, such as whether the welcome overlay has already been dismissed.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileVersion = "1.0"

// seenFile is the on-disk layout.
type seenFile struct {
	Version string          `json:"version"`
	Flags   map[string]bool `json:"flags"`
}

// SeenStore is a JSON file of named flags. Every mutation is written through.
type SeenStore struct {
	path  string
	mu    sync.RWMutex
	flags map[string]bool
}

// NewSeenStore opens the store at path. A missing file is an empty store.
func NewSeenStore(path string) (*SeenStore, error) {
	s := &SeenStore{
		path:  path,
		flags: make(map[string]bool),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Load re-reads the file.
func (s *SeenStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file seenFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seen store: %w", err)
	}

	s.flags = file.Flags
	if s.flags == nil {
		s.flags = make(map[string]bool)
	}
	return nil
}

// Seen returns the flag and whether it has ever been recorded.
func (s *SeenStore) Seen(key string) (bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.flags[key]
	return v, ok
}

// MarkSeen sets the flag and saves.
func (s *SeenStore) MarkSeen(key string) error {
	s.mu.Lock()
	s.flags[key] = true
	s.mu.Unlock()
	return s.save()
}

// Forget clears the flag and saves.
func (s *SeenStore) Forget(key string) error {
	s.mu.Lock()
	delete(s.flags, key)
	s.mu.Unlock()
	return s.save()
}

func (s *SeenStore) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(seenFile{Version: fileVersion, Flags: s.flags}, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal seen store: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Memory is a SeenStore that never touches disk. It backs sessions run without a
// seen file.
type Memory struct {
	flags map[string]bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{flags: make(map[string]bool)}
}

// Seen returns the flag and whether it has ever been recorded.
func (m *Memory) Seen(key string) (bool, bool) {
	v, ok := m.flags[key]
	return v, ok
}

// MarkSeen sets the flag.
func (m *Memory) MarkSeen(key string) error {
	m.flags[key] = true
	return nil
}

// Forget clears the flag.
func (m *Memory) Forget(key string) error {
	delete(m.flags, key)
	return nil
}
