package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"confkit/internal/config/jsonstore"
	"confkit/internal/log"
	"confkit/internal/settings"
	"confkit/internal/state/linestore"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	Path       string
	JSONOutput bool
	Verbose    bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	dir, err := FindDir(p.Path)
	if err != nil {
		return nil, err
	}

	s, err := settings.Load(filepath.Join(dir, settings.FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s is not initialized (missing %s); run 'ck init'", dir, settings.FileName)
		}
		return nil, err
	}

	cfg, err := jsonstore.New(filepath.Join(dir, s.Files.Config))
	if err != nil {
		return nil, err
	}
	st, err := linestore.New(filepath.Join(dir, s.Files.State))
	if err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	level := "warn"
	if p.Verbose {
		level = "debug"
	}

	jsonOutput := p.JSONOutput
	if v := os.Getenv(settings.EnvJSON); v == "1" || v == "true" {
		jsonOutput = true
	}

	return &App{
		Dir:      dir,
		Settings: s,
		Config:   cfg,
		State:    st,
		Out:      out,
		Err:      errOut,
		JSON:     jsonOutput,
		Log:      log.New(errOut, level),
	}, nil
}

// FindDir locates the .confkit directory.
// Resolution order: explicit path > CONFKIT_DIR env var > walk up from
// the current directory.
func FindDir(path string) (string, error) {
	if path == "" {
		path = os.Getenv(settings.EnvDir)
	}
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolving path: %w", err)
		}
		if filepath.Base(abs) != settings.DirName {
			abs = filepath.Join(abs, settings.DirName)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("cannot access confkit directory %s: %w", abs, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("confkit path is not a directory: %s", abs)
		}
		return abs, nil
	}

	// Walk up from current directory looking for .confkit
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot get current directory: %w", err)
	}

	dir := cwd
	for {
		candidate := filepath.Join(dir, settings.DirName)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s directory found (searched from %s to /)", settings.DirName, cwd)
		}
		dir = parent
	}
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ck",
		Short: "A small configuration and state toolkit",
		Long: `Confkit keeps flat key-value configuration and application state
in a .confkit directory. Configuration is stored as a JSON document with
string, integer and boolean values; state is stored as key=value lines,
making both easy to review and diff alongside your code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&provider.Path, "path", "", "Path to the .confkit directory (default: search from cwd)")
	rootCmd.PersistentFlags().BoolVar(&provider.Verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(newInitCmd(provider))
	rootCmd.AddCommand(newConfigCmd(provider))
	rootCmd.AddCommand(newStateCmd(provider))
	rootCmd.AddCommand(newDemoCmd(provider))
	rootCmd.AddCommand(newDoctorCmd(provider))

	return rootCmd
}
