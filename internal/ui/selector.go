package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/dcarrot2/g-branches/internal/git"
	"github.com/dcarrot2/g-branches/internal/ui/styles"
)

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(styles.Success).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(styles.Normal)
	dimStyle        = lipgloss.NewStyle().Foreground(styles.Muted)
	cursorStyle     = lipgloss.NewStyle().Foreground(styles.Success)
)

// selectPrompt is shown above the filter input.
const selectPrompt = "Select a branch to view details:"

// maxLabelMessageLen caps the commit message part of a choice label.
const maxLabelMessageLen = 50

// SelectorResult contains the result of the selection
type SelectorResult struct {
	Branch      git.Branch
	Selected    bool // true if user selected, false if cancelled
	Cancelled   bool
	Interrupted bool // cancelled with ctrl+c rather than esc
}

// choiceLabel builds the display line for one branch, mirroring the
// table's current-branch marker.
func choiceLabel(b git.Branch) string {
	summary := b.Summary
	if runes := []rune(summary); len(runes) > maxLabelMessageLen {
		summary = string(runes[:maxLabelMessageLen])
	}
	return fmt.Sprintf("%s (%s) - %s", b.DisplayName(), b.ShortHash(), summary)
}

// labelSource implements fuzzy.Source over choice labels.
type labelSource []string

func (s labelSource) String(i int) string { return s[i] }
func (s labelSource) Len() int            { return len(s) }

// selectorModel is the bubbletea model for branch selection
type selectorModel struct {
	branches  []git.Branch
	labels    []string
	filtered  []fuzzy.Match
	textInput textinput.Model
	cursor    int

	selected    *git.Branch
	cancelled   bool
	interrupted bool

	maxHeight int
}

func newSelectorModel(branches []git.Branch) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle
	ti.TextStyle = lipgloss.NewStyle()

	labels := make([]string, len(branches))
	for i, b := range branches {
		labels[i] = choiceLabel(b)
	}

	m := selectorModel{
		branches:  branches,
		labels:    labels,
		textInput: ti,
		cursor:    0,
		maxHeight: 10,
	}
	m.filtered = m.applyFilter("")
	return m
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			m.interrupted = true
			return m, tea.Quit

		case "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = &m.branches[m.filtered[m.cursor].Index]
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	// Handle text input
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	// Filter branches based on input
	m.filtered = m.applyFilter(m.textInput.Value())

	// Reset cursor if out of bounds
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

func (m selectorModel) applyFilter(query string) []fuzzy.Match {
	if query == "" {
		// No filter - show all branches in original order
		all := make([]fuzzy.Match, len(m.labels))
		for i := range m.labels {
			all[i] = fuzzy.Match{Str: m.labels[i], Index: i}
		}
		return all
	}

	// Results are sorted by score, best first
	return fuzzy.FindFrom(query, labelSource(m.labels))
}

func (m selectorModel) View() string {
	var sb strings.Builder

	sb.WriteString(selectPrompt + "\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	// Show filtered results
	if len(m.filtered) == 0 {
		sb.WriteString(dimStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		// Calculate visible range
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			// Center the cursor in the visible area
			halfHeight := m.maxHeight / 2
			start = m.cursor - halfHeight
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		filtering := m.textInput.Value() != ""
		for i := start; i < end; i++ {
			match := m.filtered[i]

			var line string
			switch {
			case filtering && len(match.MatchedIndexes) > 0:
				line = highlightMatches(match.Str, match.MatchedIndexes, i == m.cursor)
			case i == m.cursor:
				line = selectedStyle.Render(match.Str)
			default:
				line = unselectedStyle.Render(match.Str)
			}

			if i == m.cursor {
				sb.WriteString(cursorStyle.Render("> "))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}

		// Show scroll indicator
		if len(m.filtered) > m.maxHeight {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return sb.String()
}

// highlightMatches renders the label with matched characters highlighted.
func highlightMatches(label string, matchedIndexes []int, isSelected bool) string {
	matchSet := make(map[int]bool)
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var result strings.Builder
	for i, r := range []rune(label) {
		char := string(r)
		switch {
		case matchSet[i]:
			result.WriteString(styles.HighlightStyle.Render(char))
		case isSelected:
			result.WriteString(selectedStyle.Render(char))
		default:
			result.WriteString(unselectedStyle.Render(char))
		}
	}
	return result.String()
}

// RunSelector shows an interactive fuzzy-filtered selector for branches.
// Returns a result with Cancelled set if the user backed out; Interrupted
// additionally distinguishes ctrl+c from esc.
func RunSelector(branches []git.Branch) (*SelectorResult, error) {
	if len(branches) == 0 {
		return &SelectorResult{Cancelled: true}, nil
	}

	model := newSelectorModel(branches)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(selectorModel)
	if m.interrupted {
		return &SelectorResult{Cancelled: true, Interrupted: true}, nil
	}
	if m.cancelled {
		return &SelectorResult{Cancelled: true}, nil
	}
	if m.selected != nil {
		return &SelectorResult{Branch: *m.selected, Selected: true}, nil
	}
	return &SelectorResult{Cancelled: true}, nil
}
