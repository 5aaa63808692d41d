//go:build integration

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/repols/repols/internal/config"
)

// Tests in this file mutate REPOLS_CONFIG via t.Setenv, so none run in
// parallel.

// setConfigEnv points REPOLS_CONFIG at a path in a fresh temp dir
// without creating the file. Returns the path.
func setConfigEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("REPOLS_CONFIG", path)
	return path
}

// TestConfigInit_CreatesFile tests creating the default config.
//
// Scenario: User runs `repols config init` with no config present
// Expected: Writes the commented template and reports the location
func TestConfigInit_CreatesFile(t *testing.T) {
	path := setConfigEnv(t)
	ctx, out := testContext(t, rootConfig(), t.TempDir())

	cmd := newConfigInitCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	if !strings.Contains(out.String(), "Created config file: "+path) {
		t.Errorf("expected creation message with %q, got: %s", path, out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(string(data), "[[roots]]") {
		t.Error("expected template to document [[roots]]")
	}
}

// TestConfigInit_ExistingFile tests the overwrite guard.
//
// Scenario: User runs `repols config init` twice
// Expected: The second run fails and points at -f
func TestConfigInit_ExistingFile(t *testing.T) {
	setConfigEnv(t)
	ctx, _ := testContext(t, rootConfig(), t.TempDir())

	cmd := newConfigInitCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("first config init failed: %v", err)
	}

	cmd = newConfigInitCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for existing config, got nil")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected 'already exists' error, got %q", err.Error())
	}
}

// TestConfigInit_Force tests overwriting an existing config.
//
// Scenario: User runs `repols config init -f` over a modified config
// Expected: The file is replaced with the template
func TestConfigInit_Force(t *testing.T) {
	path := setConfigEnv(t)
	if err := os.WriteFile(path, []byte("sort_column = \"path\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx, _ := testContext(t, rootConfig(), t.TempDir())

	cmd := newConfigInitCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-f"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init -f failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "# repols configuration") {
		t.Error("expected file to be replaced with the template")
	}
}

// TestConfigInit_Stdout tests printing the template without writing.
//
// Scenario: User runs `repols config init -s`
// Expected: Template on stdout, no file created
func TestConfigInit_Stdout(t *testing.T) {
	path := setConfigEnv(t)
	ctx, out := testContext(t, rootConfig(), t.TempDir())

	cmd := newConfigInitCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-s"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init -s failed: %v", err)
	}

	if !strings.Contains(out.String(), "[[roots]]") {
		t.Error("expected template on stdout")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file at %s, stat returned %v", path, err)
	}
}

// TestConfigShow_Text tests the effective config listing.
//
// Scenario: User runs `repols config show` with a custom style, a width
// override, and one root
// Expected: File location, sort column, merged styles, widths and roots
func TestConfigShow_Text(t *testing.T) {
	path := setConfigEnv(t)
	rootDir := resolvePath(t, t.TempDir())

	cfg := rootConfig(rootDir)
	cfg.Styles = map[string][]string{"mine": {"name", "branch"}}
	cfg.Widths = map[string]int{"name": 20}

	ctx, out := testContext(t, cfg, rootDir)

	cmd := newConfigShowCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Config file: " + path,
		"sort_column: name",
		"simple: name, path",
		"mine: name, branch",
		"name: 20",
		rootDir + " (depth 1)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got: %s", want, got)
		}
	}
}

// TestConfigShow_NoRoots tests the hint when nothing is configured.
//
// Scenario: User runs `repols config show` without roots
// Expected: The roots section points at `repols config init`
func TestConfigShow_NoRoots(t *testing.T) {
	setConfigEnv(t)
	ctx, out := testContext(t, rootConfig(), t.TempDir())

	cmd := newConfigShowCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	if !strings.Contains(out.String(), "(none - run 'repols config init' to create a config)") {
		t.Errorf("expected empty roots hint, got: %s", out.String())
	}
}

// TestConfigShow_JSON tests the machine-readable config.
//
// Scenario: User runs `repols config show --json`
// Expected: The effective config round-trips through encoding/json
func TestConfigShow_JSON(t *testing.T) {
	setConfigEnv(t)
	rootDir := resolvePath(t, t.TempDir())
	ctx, out := testContext(t, rootConfig(rootDir), rootDir)

	cmd := newConfigShowCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show --json failed: %v", err)
	}

	var cfg config.Config
	if err := json.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if cfg.SortColumn != "name" {
		t.Errorf("expected sort_column 'name', got %q", cfg.SortColumn)
	}
	if len(cfg.Roots) != 1 || cfg.Roots[0].Path != rootDir || cfg.Roots[0].Depth != 1 {
		t.Errorf("expected one root %s at depth 1, got %+v", rootDir, cfg.Roots)
	}
}
