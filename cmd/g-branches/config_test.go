package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInit(t *testing.T) {
	home := resolveTempDir(t)
	t.Setenv("HOME", home)

	out, err := runRoot(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	path := filepath.Join(home, ".config", "g-branches", "config.toml")
	if !strings.Contains(out, "Created config file: "+path) {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "# g-branches configuration") {
		t.Errorf("unexpected config content:\n%s", data)
	}

	// A second init must refuse to clobber the file
	if _, err := runRoot(t, "config", "init"); err == nil {
		t.Fatal("expected error for existing config")
	} else if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("err = %v, want already-exists", err)
	}

	if _, err := runRoot(t, "config", "init", "-f"); err != nil {
		t.Fatalf("config init -f failed: %v", err)
	}
}

func TestConfigInit_Stdout(t *testing.T) {
	home := resolveTempDir(t)
	t.Setenv("HOME", home)

	out, err := runRoot(t, "config", "init", "--stdout")
	if err != nil {
		t.Fatalf("config init --stdout failed: %v", err)
	}
	if !strings.Contains(out, "# g-branches configuration") {
		t.Errorf("output = %q", out)
	}

	path := filepath.Join(home, ".config", "g-branches", "config.toml")
	if _, err := os.Stat(path); err == nil {
		t.Error("config file written despite --stdout")
	}
}

func TestConfigInit_Local(t *testing.T) {
	dir, _ := setupTestRepo(t)
	t.Chdir(dir)

	out, err := runRoot(t, "config", "init", "--local")
	if err != nil {
		t.Fatalf("config init --local failed: %v", err)
	}

	path := filepath.Join(dir, ".g-branches.toml")
	if !strings.Contains(out, "Created local config: "+path) {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("local config not written: %v", err)
	}
	if !strings.Contains(string(data), "per-repo overrides") {
		t.Errorf("unexpected local config content:\n%s", data)
	}

	if _, err := runRoot(t, "config", "init", "--local"); err == nil {
		t.Fatal("expected error for existing local config")
	} else if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("err = %v, want already-exists", err)
	}
}

func TestConfigInit_LocalStdout(t *testing.T) {
	// The template needs no repository
	t.Chdir(resolveTempDir(t))

	out, err := runRoot(t, "config", "init", "--local", "--stdout")
	if err != nil {
		t.Fatalf("config init --local --stdout failed: %v", err)
	}
	if !strings.Contains(out, "per-repo overrides") {
		t.Errorf("output = %q", out)
	}
}

func TestConfigInit_LocalOutsideRepo(t *testing.T) {
	t.Chdir(resolveTempDir(t))

	_, err := runRoot(t, "config", "init", "--local")
	if err == nil {
		t.Fatal("expected error outside a repository")
	}
	if !strings.Contains(err.Error(), "Not a git repository") {
		t.Errorf("err = %v", err)
	}
}
