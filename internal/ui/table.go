package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dcarrot2/g-branches/internal/git"
	"github.com/dcarrot2/g-branches/internal/ui/styles"
)

// TableTitle is rendered centered above the branch table.
const TableTitle = "Git Branches (sorted by latest commit)"

// maxMessageLen caps the message column; longer summaries are truncated
// with an ellipsis.
const maxMessageLen = 60

// FormatBranchesTable renders branches as a bordered table with one row
// per branch. The current branch is marked with "* " and rendered bold
// green; all rows keep the order of the input slice.
func FormatBranchesTable(branches []git.Branch) string {
	if len(branches) == 0 {
		return ""
	}

	var rows [][]string
	for _, b := range branches {
		name := b.Name
		if b.IsCurrent {
			name = "* " + name
		}
		rows = append(rows, []string{
			name,
			b.ShortHash(),
			b.FormattedDate(),
			truncate(b.Summary, maxMessageLen),
		})
	}

	t := table.New().
		Headers("Branch", "Commit", "Date", "Message").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			cell := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0:
				if branches[row].IsCurrent {
					return cell.Foreground(styles.Success).Bold(true)
				}
				return cell.Foreground(styles.Primary)
			case 1:
				return cell.Foreground(styles.Secondary)
			case 2:
				return cell.Foreground(styles.Warning)
			default:
				return cell.Foreground(styles.Normal)
			}
		})

	rendered := t.String()

	var output strings.Builder
	output.WriteString(centerIn(styles.Bold.Render(TableTitle), lipgloss.Width(rendered)))
	output.WriteString("\n")
	output.WriteString(rendered)
	output.WriteString("\n")

	return output.String()
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// centerIn pads s on the left so it sits centered within width columns.
func centerIn(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
