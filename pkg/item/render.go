// SPDX-License-Identifier: MPL-2.0

package item

import (
	"errors"
	"fmt"
	"strings"
)

// rowIndent prefixes every expanded row.
const rowIndent = "    "

// gap separates the name column from the help column.
const gap = "  "

// ErrWidthTooSmall is the sentinel wrapped by WidthError.
var ErrWidthTooSmall = errors.New("column width smaller than item width")

// WidthError reports a column width narrower than an item's FullWidth. It is
// the panic value of Expanded and the error returned by CheckWidth.
type WidthError struct {
	Item      string
	Width     int
	FullWidth int
}

// Error implements the error interface.
func (e *WidthError) Error() string {
	return fmt.Sprintf("column width %d is smaller than width %d of %q", e.Width, e.FullWidth, e.Item)
}

// Unwrap returns ErrWidthTooSmall for errors.Is() compatibility.
func (e *WidthError) Unwrap() error { return ErrWidthTooSmall }

// CheckWidth returns a *WidthError when width cannot hold it.
func CheckWidth(it Item, width int) error {
	if fw := it.FullWidth(); width < fw {
		return &WidthError{Item: it.Compact(), Width: width, FullWidth: fw}
	}
	return nil
}

// Expanded renders it as a help-listing row aligned to width. Help text starts
// at column width+6; continuation lines of multi-line help are indented to the
// same column. A nil env reads the process environment.
//
// Expanded panics with a *WidthError when width < it.FullWidth(): the width
// must come from the maximum FullWidth of the rendered group.
func Expanded(it Item, width int, env EnvLookup) string {
	if err := CheckWidth(it, width); err != nil {
		panic(err)
	}
	if env == nil {
		env = OSEnv
	}

	var sb strings.Builder
	it.writeName(&sb, width, env)
	writeHelp(&sb, it.HelpText(), width-it.FullWidth(), width)
	return sb.String()
}

// writeHelp appends help after a pad of pad spaces. Lines after the first are
// re-indented under the first line's text.
func writeHelp(sb *strings.Builder, help string, pad, width int) {
	if help == "" {
		return
	}
	for i, line := range strings.Split(help, "\n") {
		if i == 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		} else {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", width))
			sb.WriteString(rowIndent)
		}
		sb.WriteString(gap)
		sb.WriteString(line)
	}
}

func (d Decor) writeName(sb *strings.Builder, _ int, _ EnvLookup) {
	if d.Help != "" {
		sb.WriteString(rowIndent)
	}
}

func (p Positional) writeName(sb *strings.Builder, _ int, _ EnvLookup) {
	sb.WriteString(rowIndent)
	sb.WriteString("<" + p.Metavar + ">")
}

func (c Command) writeName(sb *strings.Builder, _ int, _ EnvLookup) {
	sb.WriteString(rowIndent)
	sb.WriteString(c.Name)
	if c.Short != 0 {
		sb.WriteString(", ")
		sb.WriteRune(c.Short)
	}
}

func (f Flag) writeName(sb *strings.Builder, _ int, _ EnvLookup) {
	sb.WriteString(rowIndent)
	sb.WriteString(f.Name.Expanded())
}

// writeName for an Argument also writes the environment annotation. The
// annotation is padded like help text would be; when help follows, the line
// is broken and re-indented so the help still starts at the help column.
func (a Argument) writeName(sb *strings.Builder, width int, env EnvLookup) {
	sb.WriteString(rowIndent)
	sb.WriteString(a.Name.Expanded())
	sb.WriteString(" <" + a.Metavar + ">")
	if a.Env == "" {
		return
	}

	fw := a.FullWidth()
	sb.WriteString(strings.Repeat(" ", width-fw))
	sb.WriteString(gap)
	sb.WriteString("[env:" + a.Env + envAnnotation(env, a.Env) + "]")
	if a.Help != "" {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", len(rowIndent)+fw))
	}
}
