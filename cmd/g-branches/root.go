package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dcarrot2/g-branches/internal/config"
	"github.com/dcarrot2/g-branches/internal/log"
	"github.com/dcarrot2/g-branches/internal/output"
	"github.com/dcarrot2/g-branches/internal/ui"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Loaded global config, injected into the flow
	cfg config.Config
)

// errHandled marks failures that were already rendered to the user as a
// panel. Execute exits 1 for them without printing anything further.
var errHandled = errors.New("handled")

// newRootCmd builds the base command. Running it without a subcommand
// starts the branch explorer flow.
func newRootCmd() *cobra.Command {
	var opts branchesOptions

	cmd := &cobra.Command{
		Use:   "g-branches",
		Short: "List git branches sorted by latest commit",
		Long: `g-branches lists the repository's branches sorted by most recent
commit, lets you pick one interactively, shows the selected branch's
latest-commit diff, and optionally checks it out.`,
		Example: `  g-branches                   # Pick from local branches
  g-branches --remote          # Include remote-tracking branches
  g-branches -p ~/src/app      # Explore another repository
  g-branches --switch          # Check out immediately, skip confirmation`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate mutually exclusive flags
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			// The logger depends on parsed flag values, so it is
			// attached here rather than in Execute.
			ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBranches(cmd, opts)
			if err == nil || errors.Is(err, errHandled) {
				return err
			}
			p := output.FromContext(cmd.Context())
			p.Print(ui.ErrorPanel("Unexpected error: " + err.Error()))
			return errHandled
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug diagnostics")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Flags().BoolVarP(&opts.remote, "remote", "r", false, "Include remote-tracking branches")
	cmd.Flags().BoolVarP(&opts.autoSwitch, "switch", "s", false, "Check out the selected branch without confirmation")
	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "Repository path (defaults to the current directory)")
	cmd.Flags().BoolVarP(&opts.copyCmd, "copy", "c", false, "Copy the suggested checkout command to the clipboard")

	// Version flag
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the root command and maps failures to exit codes.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd := newRootCmd()
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errHandled) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Run 'g-branches -h' for help")
		}
		os.Exit(1)
	}
}
