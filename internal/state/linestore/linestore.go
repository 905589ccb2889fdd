// Package linestore implements state.Store backed by a flat file of
// key=value lines.
//
// Writes acquire an exclusive file lock, re-read the file from disk
// (picking up writes from other processes), apply the mutation, then
// atomically replace the file. Loading replaces the in-memory mapping
// wholesale.
package linestore

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"confkit/internal/fsutil"
	"confkit/internal/state"
)

// LineStore implements state.Store using a key=value line file on disk.
type LineStore struct {
	path string
	data map[string]string
}

var _ state.Store = (*LineStore)(nil)

// New creates a LineStore that reads from and writes to path. If the
// file exists it is loaded; if it does not exist the store starts empty
// and the file is created on the first Set call.
func New(path string) (*LineStore, error) {
	s := &LineStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	s.data = state.Parse(raw)
	return s, nil
}

// Get returns the value for key and whether it was found.
func (s *LineStore) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Set writes key=value and persists to disk.
func (s *LineStore) Set(key, value string) error {
	return s.withLock(func() {
		s.data[key] = value
	})
}

// SetInMemory writes key=value to the in-memory store without persisting.
func (s *LineStore) SetInMemory(key, value string) {
	s.data[key] = value
}

// Unset removes key and persists to disk.
func (s *LineStore) Unset(key string) error {
	return s.withLock(func() {
		delete(s.data, key)
	})
}

// Has reports whether key is present.
func (s *LineStore) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// All returns a copy of all key-value pairs.
func (s *LineStore) All() map[string]string {
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// lockPath returns the path of the lock file used for flock coordination.
func (s *LineStore) lockPath() string {
	return s.path + ".lock"
}

// withLock acquires an exclusive file lock, re-reads the state from disk,
// calls fn to mutate s.data, then atomically writes s.data back.
func (s *LineStore) withLock(fn func()) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	f, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("opening state lock: %w", err)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquiring state lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	if err := s.readFromDisk(); err != nil {
		return err
	}

	fn()

	if err := fsutil.WriteFileAtomic(s.path, state.Encode(s.data), 0644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}

// readFromDisk reloads s.data from the state file on disk.
func (s *LineStore) readFromDisk() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]string)
			return nil
		}
		return fmt.Errorf("reading state file: %w", err)
	}

	s.data = state.Parse(raw)
	return nil
}
