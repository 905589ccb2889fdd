package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"confkit/internal/settings"
)

func TestInit_CreatesDirectoryAndSettings(t *testing.T) {
	base := t.TempDir()
	var out bytes.Buffer

	if err := runInit(&out, base, false); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	dir := filepath.Join(base, settings.DirName)
	s, err := settings.Load(filepath.Join(dir, settings.FileName))
	if err != nil {
		t.Fatalf("loading written settings: %v", err)
	}
	if s != settings.Default() {
		t.Errorf("written settings = %+v, want defaults", s)
	}
	if !strings.Contains(out.String(), "Initialized confkit directory") {
		t.Errorf("missing init message: %q", out.String())
	}
}

func TestInit_CreatesEmptyDataFiles(t *testing.T) {
	base := t.TempDir()
	var out bytes.Buffer

	if err := runInit(&out, base, false); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	dir := filepath.Join(base, settings.DirName)
	s := settings.Default()
	for _, name := range []string{s.Files.Config, s.Files.State} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("data file %s not created: %v", name, err)
		}
		if info.Size() != 0 {
			t.Errorf("data file %s has size %d, want 0", name, info.Size())
		}
	}
}

func TestInit_FreshDirectoryIsUsable(t *testing.T) {
	base := t.TempDir()
	var out bytes.Buffer

	if err := runInit(&out, base, false); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	// The empty config file must load as an empty store and accept
	// writes straight away.
	provider := &AppProvider{Path: base, Out: &out, Err: &out}
	app, err := provider.Get()
	if err != nil {
		t.Fatalf("Get after init: %v", err)
	}
	if err := app.Config.Set("app_name", "TestApp"); err != nil {
		t.Fatalf("Config.Set after init: %v", err)
	}
	if got := app.Config.Get("app_name", ""); got != "TestApp" {
		t.Errorf("Get(app_name) = %q, want %q", got, "TestApp")
	}
	if err := app.State.Set("version", "1.0"); err != nil {
		t.Fatalf("State.Set after init: %v", err)
	}
}

func TestInit_ForceKeepsDataFiles(t *testing.T) {
	base := t.TempDir()
	var out bytes.Buffer

	if err := runInit(&out, base, false); err != nil {
		t.Fatalf("first runInit: %v", err)
	}

	dir := filepath.Join(base, settings.DirName)
	configPath := filepath.Join(dir, settings.Default().Files.Config)
	if err := os.WriteFile(configPath, []byte(`{"keep": "me"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runInit(&out, base, true); err != nil {
		t.Fatalf("forced runInit: %v", err)
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if string(raw) != `{"keep": "me"}` {
		t.Errorf("config file content = %q, want preserved data", raw)
	}
}

func TestInit_AlreadyInitialized(t *testing.T) {
	base := t.TempDir()
	var out bytes.Buffer

	if err := runInit(&out, base, false); err != nil {
		t.Fatalf("first runInit: %v", err)
	}
	if err := runInit(&out, base, false); err == nil {
		t.Fatal("second runInit succeeded, want error")
	}
}

func TestInit_ForceReinitializes(t *testing.T) {
	base := t.TempDir()
	var out bytes.Buffer

	if err := runInit(&out, base, false); err != nil {
		t.Fatalf("first runInit: %v", err)
	}

	// Change a setting, then force re-init back to defaults.
	path := filepath.Join(base, settings.DirName, settings.FileName)
	if err := os.WriteFile(path, []byte("color: never\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runInit(&out, base, true); err != nil {
		t.Fatalf("forced runInit: %v", err)
	}
	s, err := settings.Load(path)
	if err != nil {
		t.Fatalf("loading settings: %v", err)
	}
	if s.Color != "auto" {
		t.Errorf("Color after force = %q, want %q", s.Color, "auto")
	}
}

func TestInit_EnvDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv(settings.EnvDir, base)
	var out bytes.Buffer

	if err := runInit(&out, "", false); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, settings.DirName, settings.FileName)); err != nil {
		t.Errorf("settings file not created under CONFKIT_DIR: %v", err)
	}
}
