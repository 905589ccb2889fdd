package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"confkit/internal/config"
	"confkit/internal/format"
	"confkit/internal/state"
	"confkit/internal/timeutil"

	"github.com/spf13/cobra"
)

// newDemoCmd creates the demo command.
// The demo runs entirely in memory and works without a .confkit directory.
func newDemoCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a demonstration of the confkit building blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := provider.Out
			if out == nil {
				out = os.Stdout
			}
			return runDemo(out)
		},
	}
}

func runDemo(out io.Writer) error {
	fmt.Fprintln(out, "=== confkit demo ===")

	sample := "hello world"
	fmt.Fprintf(out, "Uppercase: %s\n", strings.ToUpper(sample))
	fmt.Fprintf(out, "Current time: %s\n", timeutil.FormatMillis(timeutil.NowMillis()))

	// State: key=value lines.
	st := map[string]string{
		"version": "1.0",
		"name":    "test_app",
	}
	fmt.Fprintf(out, "State version: %s\n", st["version"])
	fmt.Fprintf(out, "\nState (key=value):\n%s", state.Encode(st))

	features := []string{"config", "state", "formatting"}
	fmt.Fprintf(out, "\nFeatures: %s\n", format.List(features))
	fmt.Fprintln(out, format.Colorize(out, format.Green, "Status: OK"))

	// Config: set values, export as JSON.
	cfg := config.New()
	cfg.Set("app_name", "TestApp")
	cfg.SetInt("max_connections", 100)
	cfg.Set("debug_mode", "true")

	doc, err := cfg.ToJSON()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nConfiguration (JSON):\n%s\n", doc)

	// Config: import a JSON document and read values back.
	display := `{"width": 1920, "height": 1080, "fullscreen": false}`
	if err := cfg.LoadJSON([]byte(display)); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nLoaded display config: %dx%d\n", cfg.GetInt("width", 0), cfg.GetInt("height", 0))

	return nil
}
