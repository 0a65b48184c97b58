// Package ui provides terminal UI components for g-branches output.
//
// This package uses the Charm libraries (lipgloss, bubbles, bubbletea)
// for styled terminal output including tables, panels, diffs and the
// interactive branch selector.
//
// # Table Formatting
//
// [FormatBranchesTable] renders the branch listing with Branch, Commit,
// Date and Message columns under a centered title. The current branch is
// marked with "* " and rendered bold green.
//
// Tables use lipgloss styling with:
//   - Normal borders in gray (color 240)
//   - Bold headers
//   - Cell padding for readability
//   - Truncation for long values (messages limited to 60 chars)
//
// # Panels
//
// [FormatBranchDetails], [ErrorPanel] and [SuccessPanel] draw rounded
// frames with the title embedded in the top border, colored blue, red
// and green respectively.
//
// # Diff Rendering
//
// [FormatDiff] prints a unified diff with a muted line-number gutter.
// Added lines are green, removed lines red, hunk headers cyan and file
// headers bold. Empty diffs collapse to a muted placeholder.
//
// # Interactive Components
//
// [RunSelector] runs a fuzzy-filtered single-select list over branches.
// Typing narrows the list via sahilm/fuzzy and matched characters are
// highlighted. The [Spinner] type wraps Bubbletea for non-interactive
// progress indication on stderr while branches load.
package ui
