package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dcarrot2/g-branches/internal/config"
	"github.com/dcarrot2/g-branches/internal/git"
	"github.com/dcarrot2/g-branches/internal/log"
	"github.com/dcarrot2/g-branches/internal/output"
	"github.com/dcarrot2/g-branches/internal/ui"
	"github.com/dcarrot2/g-branches/internal/ui/prompt"
	"github.com/dcarrot2/g-branches/internal/ui/styles"
)

// branchesOptions holds the root command's flag values.
type branchesOptions struct {
	remote     bool
	autoSwitch bool
	path       string
	copyCmd    bool
}

// runBranches drives the explorer: list branches, pick one, show its
// last commit, and optionally check it out. Failures that reach the
// user as a panel return errHandled; cancellations return nil.
func runBranches(cmd *cobra.Command, opts branchesOptions) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	p := output.FromContext(ctx)

	// The configured path applies only when --path is absent
	path := opts.path
	if !cmd.Flags().Changed("path") && cfg.Path != "" {
		path = cfg.Path
	}
	if path != "" {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			p.Print(ui.ErrorPanel("Invalid path: " + path))
			return errHandled
		}
	}

	repo, err := git.Open(path)
	if err != nil {
		return printGitError(p, err)
	}

	merged := mergeLocalConfig(cmd, repo)

	includeRemote := merged.Remote
	if cmd.Flags().Changed("remote") {
		includeRemote = opts.remote
	}
	autoSwitch := merged.Switch
	if cmd.Flags().Changed("switch") {
		autoSwitch = opts.autoSwitch
	}

	l.Debug("listing branches", "path", path, "remote", includeRemote)

	sp := ui.NewSpinner("Loading branches...")
	sp.Start()
	branches, err := repo.ListBranches(ctx, includeRemote)
	sp.Stop()
	if err != nil {
		return printGitError(p, err)
	}
	if ctx.Err() != nil {
		printCancelled(p)
		return nil
	}

	p.Print(ui.FormatBranchesTable(branches))
	p.Println()

	// Without a terminal there is nobody to prompt; the table is the output
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		l.Debug("stdin is not a terminal, skipping selection")
		return nil
	}

	result, err := ui.RunSelector(branches)
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			printCancelled(p)
			return nil
		}
		return fmt.Errorf("selection prompt: %w", err)
	}
	if result.Interrupted {
		printCancelled(p)
		return nil
	}
	if !result.Selected {
		return nil
	}
	selected := result.Branch

	diff, diffErr := repo.LastCommitDiff(ctx, selected.Name)
	if diffErr != nil {
		l.Warn("diff failed", "branch", selected.Name, "err", diffErr)
		p.Print(ui.ErrorPanel("Could not get diff: " + diffErr.Error()))
	}

	p.Print(ui.FormatBranchDetails(selected))
	p.Println()
	if diffErr == nil {
		p.Print(ui.FormatDiff(diff))
		p.Println()
	}

	if selected.IsCurrent {
		p.Println(styles.WarningStyle.Render("You are already on this branch."))
		return nil
	}

	p.Println(ui.FormatSwitchHint(selected))
	p.Println()

	if opts.copyCmd {
		if err := clipboard.WriteAll(selected.CheckoutCommand()); err != nil {
			l.Warn("clipboard copy failed", "err", err)
		} else {
			p.Println(styles.MutedStyle.Render("Copied checkout command to clipboard."))
		}
	}

	if !autoSwitch {
		res, err := prompt.Confirm(fmt.Sprintf("Do you want to switch to '%s' now?", selected.Name))
		if err != nil {
			if errors.Is(err, tea.ErrInterrupted) {
				printCancelled(p)
				return nil
			}
			return fmt.Errorf("confirm prompt: %w", err)
		}
		if res.Cancelled {
			printCancelled(p)
			return nil
		}
		if !res.Confirmed {
			p.Println(styles.MutedStyle.Render("Branch switch cancelled."))
			return nil
		}
	}

	if err := repo.Checkout(ctx, selected.Name); err != nil {
		p.Print(ui.ErrorPanel("Failed to switch branch: " + err.Error()))
		return errHandled
	}

	p.Print(ui.SuccessPanel("Successfully switched to branch: " + selected.Name))
	return nil
}

// mergeLocalConfig overlays the repository's .g-branches.toml, if any,
// onto the global config. Overlay read failures fall back to the global
// config with a warning.
func mergeLocalConfig(cmd *cobra.Command, repo *git.Repository) config.Config {
	l := log.FromContext(cmd.Context())

	root, err := repo.Root()
	if err != nil {
		l.Debug("no worktree root", "err", err)
		return cfg
	}
	local, err := config.LoadLocal(root)
	if err != nil {
		l.Warn("ignoring local config", "err", err)
		return cfg
	}
	return config.MergeLocal(cfg, local)
}

// printGitError renders a typed git failure as an error panel. Repository
// lookup failures get a hint about --path; anything untyped is passed
// back for the unexpected-error handler.
func printGitError(p *output.Printer, err error) error {
	gerr, ok := git.AsError(err)
	if !ok {
		return err
	}
	switch gerr.Kind {
	case git.RepositoryNotFound:
		p.Print(ui.ErrorPanel(gerr.Msg))
		p.Println(styles.WarningStyle.Render("Make sure you're in a git repository or provide a valid path with --path"))
	case git.NoBranchesFound:
		p.Print(ui.ErrorPanel(gerr.Msg))
	default:
		p.Print(ui.ErrorPanel("Git operation failed: " + gerr.Error()))
	}
	return errHandled
}

// printCancelled reports an interrupt, matching the blank line the raw
// ^C echo would have taken.
func printCancelled(p *output.Printer) {
	p.Println()
	p.Println(styles.WarningStyle.Render("Cancelled by user."))
}
