package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dcarrot2/g-branches/internal/config"
	"github.com/dcarrot2/g-branches/internal/git"
	"github.com/dcarrot2/g-branches/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage g-branches configuration.

Global config: ~/.config/g-branches/config.toml
Local config:  .g-branches.toml (in the repository root)`,
		Example: `  g-branches config init          # Create default global config
  g-branches config init --local  # Create local repo config
  g-branches config init -s       # Print default config to stdout`,
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates global config at ~/.config/g-branches/config.toml.
With --local, creates per-repo config at .g-branches.toml in the current
repository root.`,
		Example: `  g-branches config init           # Create global config
  g-branches config init --local   # Create local repo config
  g-branches config init -f        # Overwrite existing config
  g-branches config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				return initLocalConfig(cmd, force, stdout)
			}
			return initGlobalConfig(cmd, force, stdout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-repo .g-branches.toml instead of global config")

	return cmd
}

func initGlobalConfig(cmd *cobra.Command, force, stdout bool) error {
	p := output.FromContext(cmd.Context())

	if stdout {
		p.Print(config.DefaultConfig())
		return nil
	}

	path, err := config.Init(force)
	if err != nil {
		return err
	}

	p.Printf("Created config file: %s\n", path)
	return nil
}

func initLocalConfig(cmd *cobra.Command, force, stdout bool) error {
	p := output.FromContext(cmd.Context())

	if stdout {
		p.Print(config.DefaultLocalConfig())
		return nil
	}

	// The overlay must sit at the repository root to be picked up
	repo, err := git.Open("")
	if err != nil {
		return err
	}
	root, err := repo.Root()
	if err != nil {
		return err
	}

	configPath := filepath.Join(root, config.LocalConfigFileName)

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("local config already exists: %s (use -f to overwrite)", configPath)
		}
	}

	if err := os.WriteFile(configPath, []byte(config.DefaultLocalConfig()), 0644); err != nil {
		return err
	}

	p.Printf("Created local config: %s\n", configPath)
	return nil
}
