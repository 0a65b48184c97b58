package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dcarrot2/g-branches/internal/git"
	"github.com/dcarrot2/g-branches/internal/ui/styles"
)

// diffHeading precedes rendered diff output.
const diffHeading = "Commit Diff:"

var diffHeadingStyle = lipgloss.NewStyle().
	Foreground(styles.Warning).
	Bold(true)

// FormatDiff renders a unified diff with a line-number gutter and
// per-line colors: additions green, deletions red, hunk headers cyan.
// Empty diffs collapse to a muted placeholder without the heading.
func FormatDiff(diff string) string {
	if strings.TrimSpace(diff) == "" || diff == git.NoChanges {
		return styles.MutedStyle.Render(git.NoChanges) + "\n"
	}

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	gutter := len(strconv.Itoa(len(lines)))

	var sb strings.Builder
	sb.WriteString(diffHeadingStyle.Render(diffHeading))
	sb.WriteString("\n")

	for i, line := range lines {
		sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%*d", gutter, i+1)))
		sb.WriteString(" ")
		sb.WriteString(colorizeDiffLine(line))
		sb.WriteString("\n")
	}

	return sb.String()
}

func colorizeDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "diff "):
		return styles.Bold.Render(line)
	case strings.HasPrefix(line, "@@"):
		return styles.PrimaryStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return styles.SuccessStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return styles.ErrorStyle.Render(line)
	default:
		return line
	}
}
