// Package state defines the application state contract and its flat
// key=value line codec. State is a string-to-string mapping persisted as
// one entry per line; the filesystem-backed implementation lives in the
// linestore subpackage.
package state

import (
	"sort"
	"strings"
)

// Store provides key-value access to application state.
type Store interface {
	// Get returns the value for key and whether it was found.
	Get(key string) (string, bool)

	// Set writes key=value to the store and persists to disk.
	Set(key, value string) error

	// SetInMemory writes key=value to the in-memory store without
	// persisting. Use this for runtime overrides that should not be
	// written back to the state file.
	SetInMemory(key, value string)

	// Unset removes key from the store and persists to disk.
	// Removing an absent key is a no-op.
	Unset(key string) error

	// Has reports whether key is present.
	Has(key string) bool

	// All returns a copy of all key-value pairs.
	All() map[string]string
}

// Parse decodes the line-oriented state format: one key=value entry per
// line, split at the first '='. Lines without '=' are ignored, so stray
// or blank lines never fail a load.
func Parse(data []byte) map[string]string {
	entries := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		entries[key] = value
	}
	return entries
}

// Encode renders entries in the line format with keys sorted, so the
// file content is deterministic and diff-friendly.
func Encode(entries map[string]string) []byte {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(entries[k])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
