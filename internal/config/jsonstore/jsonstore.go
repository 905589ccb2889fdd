// Package jsonstore persists a config.Store as a JSON file on disk.
//
// Reads serve from memory; writes acquire an exclusive file lock, re-read
// the file (picking up writes from other processes), apply the mutation,
// then atomically replace the file with the store's JSON form.
package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"confkit/internal/config"
	"confkit/internal/fsutil"
)

// JSONStore wraps a config.Store with file persistence.
type JSONStore struct {
	path  string
	store *config.Store
}

// New creates a JSONStore that reads from and writes to path. If the
// file exists it is loaded; a missing or zero-length file means an empty
// store. A file with content that does not parse is an error, not
// silently discarded state.
func New(path string) (*JSONStore, error) {
	s := &JSONStore{
		path:  path,
		store: config.New(),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if len(raw) == 0 {
		return s, nil
	}

	if err := s.store.LoadJSON(raw); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return s, nil
}

// Get returns the value for key, or fallback if absent.
func (s *JSONStore) Get(key, fallback string) string {
	return s.store.Get(key, fallback)
}

// GetInt returns the value for key parsed as an integer, or fallback if
// absent or unparsable.
func (s *JSONStore) GetInt(key string, fallback int) int {
	return s.store.GetInt(key, fallback)
}

// Has reports whether key is present.
func (s *JSONStore) Has(key string) bool {
	return s.store.Has(key)
}

// Set writes key=value and persists to disk.
func (s *JSONStore) Set(key, value string) error {
	return s.withLock(func() error {
		s.store.Set(key, value)
		return nil
	})
}

// SetInt stores the decimal form of value under key and persists to disk.
func (s *JSONStore) SetInt(key string, value int) error {
	return s.withLock(func() error {
		s.store.SetInt(key, value)
		return nil
	})
}

// Unset removes key and persists to disk.
func (s *JSONStore) Unset(key string) error {
	return s.withLock(func() error {
		s.store.Unset(key)
		return nil
	})
}

// Import replaces the whole store with the given JSON document and
// persists it. On a malformed document nothing changes, in memory or on
// disk.
func (s *JSONStore) Import(data []byte) error {
	return s.withLock(func() error {
		return s.store.LoadJSON(data)
	})
}

// Export returns the store's pretty-printed JSON form.
func (s *JSONStore) Export() ([]byte, error) {
	return s.store.ToJSON()
}

// All returns a copy of all key-value pairs.
func (s *JSONStore) All() map[string]string {
	return s.store.All()
}

// Keys returns all keys in sorted order.
func (s *JSONStore) Keys() []string {
	return s.store.Keys()
}

// lockPath returns the path of the lock file used for flock coordination.
func (s *JSONStore) lockPath() string {
	return s.path + ".lock"
}

// withLock acquires an exclusive file lock, re-reads the config from
// disk, calls fn to mutate the store, then atomically writes the store
// back. If fn errors the file is left as it was.
func (s *JSONStore) withLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("opening config lock: %w", err)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquiring config lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	if err := s.readFromDisk(); err != nil {
		return err
	}

	if err := fn(); err != nil {
		return err
	}

	out, err := s.store.ToJSON()
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(s.path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// readFromDisk reloads the store from the config file on disk.
func (s *JSONStore) readFromDisk() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.store = config.New()
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if len(raw) == 0 {
		s.store = config.New()
		return nil
	}

	if err := s.store.LoadJSON(raw); err != nil {
		return fmt.Errorf("config file %s: %w", s.path, err)
	}
	return nil
}
