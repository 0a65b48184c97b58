package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo config file looked up at the repository root.
const LocalConfigFileName = ".g-branches.toml"

// LocalConfig holds per-repo configuration overrides from .g-branches.toml.
// Pointer fields indicate "not set" (inherit from global). The repository
// path itself has no local override; the file is only found via that path.
type LocalConfig struct {
	Remote *bool `toml:"remote"`
	Switch *bool `toml:"switch"`
}

// LoadLocal reads a per-repo .g-branches.toml config from the given repo root.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	return &local, nil
}

// defaultLocalConfig is the template for g-branches config init --local
const defaultLocalConfig = `# g-branches local config (per-repo overrides)
# Place this file at the root of your repository.
# Settings here override the global ~/.config/g-branches/config.toml
# for this repo only. Explicit command-line flags still win.

# Include remote-tracking branches in the listing
# remote = true

# Check the selected branch out without asking for confirmation
# switch = false
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
