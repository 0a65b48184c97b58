package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dcarrot2/g-branches/internal/git"
	"github.com/dcarrot2/g-branches/internal/ui/styles"
)

var hintStyle = lipgloss.NewStyle().
	Foreground(styles.Success).
	Bold(true)

// FormatBranchDetails renders branch metadata inside a blue frame titled
// "Branch Details". The commit hash is shown in full here, unlike the
// table which abbreviates it.
func FormatBranchDetails(b git.Branch) string {
	branchType := "Local"
	if b.IsRemote {
		branchType = "Remote"
	}

	fields := []struct {
		key   string
		value string
	}{
		{"Branch", b.Name},
		{"Commit", b.Hash},
		{"Date", b.FormattedDate()},
		{"Message", b.Summary},
		{"Type", branchType},
	}

	var lines []string
	for _, f := range fields {
		lines = append(lines, styles.KeyStyle.Render(f.key+":")+" "+f.value)
	}

	return renderPanel("Branch Details", strings.Join(lines, "\n"), styles.Info)
}

// FormatSwitchHint renders the checkout command that would switch to b,
// prefixed with a bold green label.
func FormatSwitchHint(b git.Branch) string {
	return hintStyle.Render("To switch to this branch, run:") + " " + b.CheckoutCommand()
}
