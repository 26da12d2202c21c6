// SPDX-License-Identifier: MPL-2.0

package layout

import "github.com/charmbracelet/lipgloss"

// Styles decorates the single-line parts of a page. Rows are never styled so
// their alignment is independent of the terminal.
type Styles struct {
	Title   lipgloss.Style
	Usage   lipgloss.Style
	Command lipgloss.Style
}

// PlainStyles leaves every part undecorated.
func PlainStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle(),
		Usage:   lipgloss.NewStyle(),
		Command: lipgloss.NewStyle(),
	}
}

// DefaultStyles returns the colored styles used on terminals.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")),
		Usage: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Command: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}
