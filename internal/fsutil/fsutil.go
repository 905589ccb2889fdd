// Package fsutil provides the small set of filesystem helpers shared by
// the stores and the CLI.
package fsutil

import (
	"os"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic writes data to path via a temporary file and rename,
// so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}

// Exists reports whether path exists (file or directory).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListDir returns the entry names in dir, in directory order.
// A missing directory yields a nil slice and no error.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
