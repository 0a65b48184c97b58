package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the g-branches configuration.
type Config struct {
	Remote bool   `toml:"remote"` // include remote-tracking branches by default
	Switch bool   `toml:"switch"` // check the selection out without asking
	Path   string `toml:"path"`   // repository to inspect when --path is not given
}

// Default returns the default configuration.
func Default() Config {
	return Config{}
}

// EnvPath is the environment override for the default repository path.
const EnvPath = "G_BRANCHES_PATH"

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	// Allow ~ paths
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	// Must be absolute
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "g-branches", "config.toml"), nil
}

// Load reads config from ~/.config/g-branches/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return finalize(Default())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finalize(Default())
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return finalize(cfg)
}

// finalize applies the environment override, then validates and expands
// the configured path (shells don't expand ~ inside config files).
func finalize(cfg Config) (Config, error) {
	if env := os.Getenv(EnvPath); env != "" {
		cfg.Path = env
	}

	if err := ValidatePath(cfg.Path, "path"); err != nil {
		return Default(), err
	}
	if cfg.Path != "" {
		expanded, err := expandPath(cfg.Path)
		if err != nil {
			return Default(), fmt.Errorf("expand path: %w", err)
		}
		cfg.Path = expanded
	}

	return cfg, nil
}

const defaultConfig = `# g-branches configuration

# Include remote-tracking branches in the listing by default (same as --remote)
# remote = false

# Check the selected branch out without asking for confirmation (same as --switch)
# switch = false

# Repository to inspect when --path is not given
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# path = "~/src/my-repo"

# Per-repo overrides can be placed in a .g-branches.toml file at the
# repository root; see "g-branches config init --local".
`

// DefaultConfig returns the default global configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/g-branches/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	// Create directory
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	// Write default config
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
