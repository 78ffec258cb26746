package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage keeps all keys in a single JSON document on disk, persisted
// atomically with the temp-file + rename pattern. A missing or corrupt file
// degrades to an empty store.
type FileStorage struct {
	mu   sync.RWMutex
	path string
	data map[string]json.RawMessage
}

// NewFileStorage creates or opens a store at the given path. If the
// directory does not exist, it is created with 0700 permissions.
func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}

	s.load()
	return s, nil
}

// load reads the document from disk. Any failure (missing file, unreadable
// medium, invalid JSON) leaves the store empty, matching the adapter's
// corrupt-equals-absent contract.
func (s *FileStorage) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil || len(raw) == 0 {
		return
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return
	}
	if data != nil {
		s.data = data
	}
}

// syncLocked writes the document atomically. Must be called with the write
// lock held.
func (s *FileStorage) syncLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmpPath := s.path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	if _, err := f.Write(raw); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("fsync: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

// Read returns the value stored under key, or (nil, nil) when absent or not
// valid JSON.
func (s *FileStorage) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok || !json.Valid(value) {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Write stores value under key and persists the whole document.
func (s *FileStorage) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append(json.RawMessage(nil), value...)
	return s.syncLocked()
}

// Delete removes key and persists. Deleting an absent key is not an error.
func (s *FileStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.syncLocked()
}

// Close flushes the document to disk.
func (s *FileStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncLocked()
}

// Path returns the store file path.
func (s *FileStorage) Path() string {
	return s.path
}
