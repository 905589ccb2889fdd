package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"confkit/internal/config/jsonstore"
	"confkit/internal/format"
	"confkit/internal/fsutil"
	"confkit/internal/settings"

	"github.com/spf13/cobra"
)

// newDoctorCmd creates the doctor command.
func newDoctorCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the confkit directory for problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}
			return runDoctor(app)
		},
	}
}

func runDoctor(app *App) error {
	problems := 0
	ok := func(msg string) {
		fmt.Fprintln(app.Out, app.Colorize(format.Green, "ok")+": "+msg)
	}
	problem := func(msg string) {
		problems++
		fmt.Fprintln(app.Out, app.Colorize(format.Red, "problem")+": "+msg)
	}

	entries, err := fsutil.ListDir(app.Dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", app.Dir, err)
	}
	ok(fmt.Sprintf("%s contains %d entries", app.Dir, len(entries)))

	if _, err := settings.Load(filepath.Join(app.Dir, settings.FileName)); err != nil {
		problem(fmt.Sprintf("settings: %v", err))
	} else {
		ok("settings file parses")
	}

	configPath := filepath.Join(app.Dir, app.Settings.Files.Config)
	if !fsutil.Exists(configPath) {
		ok("config file absent (created on first set)")
	} else if _, err := jsonstore.New(configPath); err != nil {
		problem(fmt.Sprintf("config: %v", err))
	} else {
		ok(fmt.Sprintf("config file parses (%d entries)", len(app.Config.All())))
	}

	statePath := filepath.Join(app.Dir, app.Settings.Files.State)
	if !fsutil.Exists(statePath) {
		ok("state file absent (created on first set)")
	} else if junk, err := junkStateLines(statePath); err != nil {
		problem(fmt.Sprintf("state: %v", err))
	} else if junk > 0 {
		problem(fmt.Sprintf("state file has %d lines without '=' (ignored on load)", junk))
	} else {
		ok(fmt.Sprintf("state file parses (%d entries)", len(app.State.All())))
	}

	if problems > 0 {
		return fmt.Errorf("doctor found %d problems", problems)
	}
	fmt.Fprintln(app.Out, "No problems found")
	return nil
}

// junkStateLines counts non-empty lines the state parser would ignore.
func junkStateLines(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	junk := 0
	for _, line := range strings.Split(string(raw), "\n") {
		if line == "" {
			continue
		}
		if !strings.Contains(line, "=") {
			junk++
		}
	}
	return junk, nil
}
