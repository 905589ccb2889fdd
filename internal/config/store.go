// Package config implements the confkit configuration store: a flat
// string-to-string mapping with JSON import/export and a three-way type
// coercion rule (string, integer, boolean).
//
// Every value is held as its string form regardless of how it was set;
// the value's kind is re-derived at export time, not remembered. A Store
// is not safe for concurrent use; callers serialize access.
package config

import (
	"sort"
	"strconv"
)

// Store holds configuration key/value pairs. The zero value is not
// usable; create one with New.
type Store struct {
	entries map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: make(map[string]string)}
}

// Set inserts or overwrites the value for key.
func (s *Store) Set(key, value string) {
	s.entries[key] = value
}

// Get returns the value for key, or fallback if the key is absent.
// Absence is not an error.
func (s *Store) Get(key, fallback string) string {
	if v, ok := s.entries[key]; ok {
		return v
	}
	return fallback
}

// SetInt stores the decimal string form of value under key. The integer
// kind is not tagged; export re-infers it from the text (see ToJSON).
func (s *Store) SetInt(key string, value int) {
	s.entries[key] = strconv.Itoa(value)
}

// GetInt parses the stored value as a base-10 integer. If the key is
// absent or the whole value does not parse, fallback is returned and the
// parse failure is not surfaced.
func (s *Store) GetInt(key string, fallback int) int {
	v, ok := s.entries[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Unset removes key. Removing an absent key is a no-op.
func (s *Store) Unset(key string) {
	delete(s.entries, key)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns a copy of all key-value pairs.
func (s *Store) All() map[string]string {
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// replace swaps in a new entry set. LoadJSON decodes into a fresh map and
// installs it here only after the whole document parsed, so a failed
// import never leaves a partial mapping.
func (s *Store) replace(entries map[string]string) {
	s.entries = entries
}
