package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dcarrot2/g-branches/internal/ui/styles"
)

// renderPanel draws body inside a rounded frame with title centered in
// the top border. The frame is sized to fit the widest body line.
func renderPanel(title, body string, borderColor lipgloss.TerminalColor) string {
	border := lipgloss.NewStyle().Foreground(borderColor)

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")

	width := lipgloss.Width(title) + 2
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}

	// Top border with embedded title, e.g. ╭──── Title ────╮
	titleWidth := lipgloss.Width(title) + 2
	left := (width + 2 - titleWidth) / 2
	right := width + 2 - titleWidth - left

	var sb strings.Builder
	sb.WriteString(border.Render("╭" + strings.Repeat("─", left)))
	sb.WriteString(" " + styles.Bold.Render(title) + " ")
	sb.WriteString(border.Render(strings.Repeat("─", right) + "╮"))
	sb.WriteString("\n")

	for _, line := range lines {
		pad := strings.Repeat(" ", width-lipgloss.Width(line))
		sb.WriteString(border.Render("│"))
		sb.WriteString(" " + line + pad + " ")
		sb.WriteString(border.Render("│"))
		sb.WriteString("\n")
	}

	sb.WriteString(border.Render("╰" + strings.Repeat("─", width+2) + "╯"))
	sb.WriteString("\n")

	return sb.String()
}

// ErrorPanel renders message bold red inside a red frame titled "Error".
func ErrorPanel(message string) string {
	body := lipgloss.NewStyle().Foreground(styles.Error).Bold(true).Render(message)
	return renderPanel("Error", body, styles.Error)
}

// SuccessPanel renders message bold green inside a green frame titled
// "Success".
func SuccessPanel(message string) string {
	body := lipgloss.NewStyle().Foreground(styles.Success).Bold(true).Render(message)
	return renderPanel("Success", body, styles.Success)
}
