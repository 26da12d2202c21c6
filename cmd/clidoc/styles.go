// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/clidoc/clidoc/internal/config"
	"github.com/clidoc/clidoc/internal/layout"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by the CLI's own messages.
const (
	ColorError   = lipgloss.Color("196")
	ColorSuccess = lipgloss.Color("42")
	ColorWarning = lipgloss.Color("214")
	ColorCommand = lipgloss.Color("39")
	ColorMuted   = lipgloss.Color("245")
)

// defaultWrapWidth is the markdown wrap width when stdout is not a terminal.
const defaultWrapWidth = 80

var (
	// TitleStyle is for headers such as "Current Configuration".
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	// SubtitleStyle is for secondary text.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle marks valid descriptions.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle marks failures.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// CmdStyle is for keys, commands and paths.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorCommand)
)

// lightPageStyles are the page styles for light terminal backgrounds.
func lightPageStyles() layout.Styles {
	return layout.Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("166")),
		Usage: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("25")),
		Command: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or defaultWrapWidth.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWrapWidth
}

// colorEnabled resolves the color scheme for output written to w.
func colorEnabled(scheme config.ColorScheme, w io.Writer) bool {
	switch scheme {
	case config.ColorSchemeNone:
		return false
	case config.ColorSchemeDark, config.ColorSchemeLight:
		return true
	default:
		return isTerminal(w)
	}
}

// pageStyles picks the help page styles for the scheme.
func pageStyles(scheme config.ColorScheme, color bool) layout.Styles {
	switch {
	case !color:
		return layout.PlainStyles()
	case scheme == config.ColorSchemeLight:
		return lightPageStyles()
	default:
		return layout.DefaultStyles()
	}
}

// markdownStyle picks the glamour style. auto follows an explicit color
// scheme and falls back to notty when colors are off.
func markdownStyle(cfg *config.Config, color bool) string {
	if !color {
		return string(config.MarkdownStyleNoTTY)
	}
	if cfg.Render.MarkdownStyle != config.MarkdownStyleAuto {
		return string(cfg.Render.MarkdownStyle)
	}
	switch cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return string(config.MarkdownStyleDark)
	case config.ColorSchemeLight:
		return string(config.MarkdownStyleLight)
	default:
		return string(config.MarkdownStyleAuto)
	}
}
