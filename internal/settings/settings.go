// Package settings handles confkit tool settings loading and defaults.
// Settings configure the CLI itself; application configuration lives in
// the JSON config store.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DirName is the data directory the CLI looks for.
const DirName = ".confkit"

// FileName is the settings file inside the data directory.
const FileName = "confkit.yaml"

// Settings represents the contents of .confkit/confkit.yaml.
type Settings struct {
	Color string        `yaml:"color"` // "auto", "always" or "never"
	Files FilesSettings `yaml:"files"`
}

// FilesSettings names the data files inside the data directory.
type FilesSettings struct {
	Config string `yaml:"config"`
	State  string `yaml:"state"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Color: "auto",
		Files: FilesSettings{
			Config: "config.json",
			State:  "state",
		},
	}
}

// Load reads the settings file from path and applies defaults for
// missing fields.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}

	if s.Files.Config == "" {
		s.Files.Config = "config.json"
	}
	if s.Files.State == "" {
		s.Files.State = "state"
	}

	return s, nil
}

// Write writes the provided settings to path.
func Write(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// WriteDefault writes the default settings to path.
func WriteDefault(path string) error {
	return Write(path, Default())
}
