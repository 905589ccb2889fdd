package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigGet_SetKey(t *testing.T) {
	app, out := newTestApp(t)
	if err := app.Config.Set("app_name", "TestApp"); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	cmd := newConfigGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"app_name"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "TestApp" {
		t.Errorf("config get app_name = %q, want %q", got, "TestApp")
	}
}

func TestConfigGet_MissingKey(t *testing.T) {
	app, out := newTestApp(t)

	cmd := newConfigGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"absent"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "absent (not set)" {
		t.Errorf("config get absent = %q, want %q", got, "absent (not set)")
	}
}

func TestConfigGet_Fallback(t *testing.T) {
	app, out := newTestApp(t)

	cmd := newConfigGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"absent", "--fallback", "42"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "42" {
		t.Errorf("config get with fallback = %q, want %q", got, "42")
	}
}

func TestConfigGet_JSON(t *testing.T) {
	app, out := newTestApp(t)
	app.JSON = true
	if err := app.Config.Set("k", "v"); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	cmd := newConfigGetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"k"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if result["key"] != "k" || result["value"] != "v" || result["set"] != true {
		t.Errorf("JSON output = %v", result)
	}
}

func TestConfigSet(t *testing.T) {
	app, _ := newTestApp(t)

	cmd := newConfigSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"app_name", "TestApp"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	if got := app.Config.Get("app_name", ""); got != "TestApp" {
		t.Errorf("stored value = %q, want %q", got, "TestApp")
	}
}

func TestConfigSet_Int(t *testing.T) {
	app, _ := newTestApp(t)

	cmd := newConfigSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"max_connections", "100", "--int"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config set --int failed: %v", err)
	}

	if got := app.Config.GetInt("max_connections", 0); got != 100 {
		t.Errorf("stored value = %d, want 100", got)
	}

	// The file carries the value as a JSON number.
	raw, err := os.ReadFile(filepath.Join(app.Dir, app.Settings.Files.Config))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(raw), `"max_connections": 100`) {
		t.Errorf("config file missing numeric value:\n%s", raw)
	}
}

func TestConfigSet_IntRejectsNonInteger(t *testing.T) {
	app, _ := newTestApp(t)

	cmd := newConfigSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"max_connections", "lots", "--int"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("config set --int with non-integer succeeded, want error")
	}
}

func TestConfigList(t *testing.T) {
	app, out := newTestApp(t)
	for k, v := range map[string]string{"b": "2", "a": "1"} {
		if err := app.Config.Set(k, v); err != nil {
			t.Fatalf("seeding config: %v", err)
		}
	}

	cmd := newConfigListCmd(NewTestProvider(app))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config list failed: %v", err)
	}

	if got := out.String(); got != "a=1\nb=2\n" {
		t.Errorf("config list = %q, want %q", got, "a=1\nb=2\n")
	}
}

func TestConfigUnset(t *testing.T) {
	app, _ := newTestApp(t)
	if err := app.Config.Set("gone", "soon"); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	cmd := newConfigUnsetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"gone"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config unset failed: %v", err)
	}

	if app.Config.Has("gone") {
		t.Error("key survived config unset")
	}
}

func TestConfigImport_FromFile(t *testing.T) {
	app, out := newTestApp(t)

	doc := filepath.Join(t.TempDir(), "display.json")
	blob := `{"width": 1920, "height": 1080, "fullscreen": false}`
	if err := os.WriteFile(doc, []byte(blob), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newConfigImportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{doc})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config import failed: %v", err)
	}

	if got := app.Config.GetInt("width", 0); got != 1920 {
		t.Errorf("GetInt(width) = %d, want 1920", got)
	}
	if got := app.Config.GetInt("height", 0); got != 1080 {
		t.Errorf("GetInt(height) = %d, want 1080", got)
	}
	if !strings.Contains(out.String(), "Imported 3 entries") {
		t.Errorf("missing import summary: %q", out.String())
	}
}

func TestConfigImport_FromStdin(t *testing.T) {
	app, _ := newTestApp(t)

	cmd := newConfigImportCmd(NewTestProvider(app))
	cmd.SetIn(strings.NewReader(`{"app_name": "TestApp"}`))
	cmd.SetArgs([]string{"-"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config import from stdin failed: %v", err)
	}

	if got := app.Config.Get("app_name", ""); got != "TestApp" {
		t.Errorf("Get(app_name) = %q, want %q", got, "TestApp")
	}
}

func TestConfigImport_MalformedKeepsExisting(t *testing.T) {
	app, _ := newTestApp(t)
	if err := app.Config.Set("keep", "me"); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	doc := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(doc, []byte(`{"broken": `), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newConfigImportCmd(NewTestProvider(app))
	cmd.SetArgs([]string{doc})
	if err := cmd.Execute(); err == nil {
		t.Fatal("import of malformed document succeeded, want error")
	}

	if got := app.Config.Get("keep", ""); got != "me" {
		t.Errorf("existing entry lost after failed import: Get(keep) = %q", got)
	}
}

func TestConfigExport(t *testing.T) {
	app, out := newTestApp(t)
	if err := app.Config.Set("app_name", "TestApp"); err != nil {
		t.Fatalf("seeding config: %v", err)
	}
	if err := app.Config.SetInt("max_connections", 100); err != nil {
		t.Fatalf("seeding config: %v", err)
	}
	if err := app.Config.Set("debug_mode", "true"); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	cmd := newConfigExportCmd(NewTestProvider(app))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config export failed: %v", err)
	}

	doc := out.String()
	for _, want := range []string{
		`"app_name": "TestApp"`,
		`"max_connections": 100`,
		`"debug_mode": "true"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("export missing %s:\n%s", want, doc)
		}
	}
}
