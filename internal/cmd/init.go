package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"confkit/internal/settings"

	"github.com/spf13/cobra"
)

// newInitCmd creates the init command.
// Note: init doesn't use the provider since it creates the .confkit directory.
func newInitCmd(provider *AppProvider) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a confkit directory",
		Long:  `Initialize a .confkit directory with default settings in the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := provider.Out
			if out == nil {
				out = os.Stdout
			}
			return runInit(out, provider.Path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Force initialization even if .confkit exists")

	return cmd
}

func runInit(out io.Writer, path string, force bool) error {
	// Path resolution: --path flag > CONFKIT_DIR env var > CWD
	basePath := path
	if basePath == "" {
		basePath = os.Getenv(settings.EnvDir)
	}
	if basePath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		basePath = cwd
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	dir := absPath
	if filepath.Base(dir) != settings.DirName {
		dir = filepath.Join(absPath, settings.DirName)
	}

	settingsFile := filepath.Join(dir, settings.FileName)
	if _, err := os.Stat(settingsFile); err == nil {
		if !force {
			return errors.New("confkit directory already initialized (use --force to reinitialize)")
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking settings file: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", settings.DirName, err)
	}

	if err := settings.WriteDefault(settingsFile); err != nil {
		return err
	}

	// Create empty data files so the directory is complete from the
	// start. Existing files are left alone, including on --force.
	s := settings.Default()
	for _, name := range []string{s.Files.Config, s.Files.State} {
		if err := touchFile(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
	}

	fmt.Fprintf(out, "Initialized confkit directory in %s\n", dir)
	return nil
}

// touchFile creates an empty file if none exists, preserving any content
// already there.
func touchFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}
