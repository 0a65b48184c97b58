// Package config handles loading and validation of g-branches configuration.
//
// Configuration is read from ~/.config/g-branches/config.toml, with a
// per-repo overlay and an environment override for the repository path.
//
// # Configuration Sources (highest priority first)
//
//   - Explicitly set command-line flags
//   - G_BRANCHES_PATH env var: repository to inspect
//   - .g-branches.toml at the repository root (remote, switch)
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - remote: include remote-tracking branches in the listing (default false)
//   - switch: check the selected branch out without asking (default false)
//   - path: repository to inspect when --path is not given (absolute or ~/...)
//
// # Per-Repo Overrides
//
// A .g-branches.toml file at the repository root overrides remote and switch
// for that repository only:
//
//	remote = true
//	switch = false
//
// Unset keys inherit the global value. [LoadLocal] reads the overlay and
// [MergeLocal] folds it into the global [Config].
//
// # Path Validation
//
// path must be absolute or start with ~ (no relative paths like "." or "..")
// to avoid confusion about the working directory.
package config
