package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dcarrot2/g-branches/internal/ui/styles"
)

const (
	qmark = "?"
	amark = "✓"
)

var (
	qmarkStyle = lipgloss.NewStyle().Foreground(styles.Warning)
	amarkStyle = lipgloss.NewStyle().Foreground(styles.Success)
	hintStyle  = lipgloss.NewStyle().Foreground(styles.Muted)
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	message   string
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			// Default to no
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		if m.cancelled {
			return ""
		}
		answer := "No"
		if m.confirmed {
			answer = "Yes"
		}
		return fmt.Sprintf("%s %s %s\n", amarkStyle.Render(amark), m.message, styles.Bold.Render(answer))
	}
	return fmt.Sprintf("%s %s %s ", qmarkStyle.Render(qmark), m.message, hintStyle.Render("[y/N]"))
}

// Confirm shows a yes/no prompt and returns the user's choice.
// The default answer is "no" if the user presses enter without input.
// The answered line stays on screen with the choice echoed.
func Confirm(message string) (ConfirmResult, error) {
	model := confirmModel{message: message}
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := finalModel.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}
