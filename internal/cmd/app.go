// Package cmd implements the ck command-line interface.
package cmd

import (
	"io"
	"os"

	"confkit/internal/config/jsonstore"
	"confkit/internal/format"
	"confkit/internal/settings"
	"confkit/internal/state"

	"github.com/rs/zerolog"
)

// App holds application state shared across commands.
type App struct {
	Dir      string // path to the .confkit directory
	Settings settings.Settings
	Config   *jsonstore.JSONStore
	State    state.Store
	Out      io.Writer
	Err      io.Writer
	JSON     bool // output in JSON format
	Log      zerolog.Logger
}

// Colorize applies color to s according to the color mode: "never"
// disables it, "always" forces it, and "auto" colors only when Out is a
// terminal. CK_COLOR overrides the configured mode; NO_COLOR disables
// color regardless.
func (a *App) Colorize(color, s string) string {
	mode := a.Settings.Color
	if env := os.Getenv(settings.EnvColor); env != "" {
		mode = env
	}
	if mode == "never" || os.Getenv(settings.EnvNoColor) != "" {
		return s
	}
	if mode == "always" {
		return format.Color(color, s)
	}
	return format.Colorize(a.Out, color, s)
}
