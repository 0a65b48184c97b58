package config

import (
	"os"
	"path/filepath"
	"testing"
)

// setupHome points HOME at a fresh temp dir and clears the env override.
// Returns the temp home path.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvPath, "")
	return home
}

// writeConfig writes content to ~/.config/g-branches/config.toml under the fake home.
func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "g-branches")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Remote || cfg.Switch || cfg.Path != "" {
		t.Errorf("Default() = %+v, want zero values", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	setupHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_ReadsValues(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, `
remote = true
switch = true
path = "~/src/app"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Remote {
		t.Error("remote not loaded")
	}
	if !cfg.Switch {
		t.Error("switch not loaded")
	}
	want := filepath.Join(home, "src", "app")
	if cfg.Path != want {
		t.Errorf("path = %q, want expanded %q", cfg.Path, want)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "not valid toml [[[")

	cfg, err := Load()
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults on parse failure", cfg)
	}
}

func TestLoad_RelativePathRejected(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, `path = "."`)

	cfg, err := Load()
	if err == nil {
		t.Fatal("expected error for relative path")
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults on invalid path", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, `path = "~/src/app"`)
	t.Setenv(EnvPath, "/elsewhere/repo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Path != "/elsewhere/repo" {
		t.Errorf("path = %q, want env override", cfg.Path)
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~", false},
		{"~/src/app", false},
		{"/absolute/path", false},
		{".", true},
		{"..", true},
		{"relative/path", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path, "path")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := setupHome(t)

	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/src", filepath.Join(home, "src")},
		{"/absolute", "/absolute"},
	}

	for _, tt := range tests {
		got, err := expandPath(tt.path)
		if err != nil {
			t.Fatalf("expandPath(%q) failed: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestInit(t *testing.T) {
	home := setupHome(t)

	path, err := Init(false)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	want := filepath.Join(home, ".config", "g-branches", "config.toml")
	if path != want {
		t.Errorf("Init path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Existing file is not overwritten without force.
	if _, err := Init(false); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, err := Init(true); err != nil {
		t.Fatalf("Init --force failed: %v", err)
	}

	// The template must itself be loadable.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load of template failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("template config = %+v, want defaults (all keys commented)", cfg)
	}
}
