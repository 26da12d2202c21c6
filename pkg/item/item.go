// SPDX-License-Identifier: MPL-2.0

package item

import (
	"strings"
	"unicode/utf8"
)

type (
	// Item is one renderable element of a command-line description.
	// The set of implementations is closed: Decor, Positional, Command, Flag
	// and Argument. Items are immutable values.
	Item interface {
		// Kind returns the coarse category of the item.
		Kind() Kind
		// HelpText returns the help text, or "" when the item has none.
		HelpText() string
		// FullWidth returns the minimum column width a caller must reserve
		// for the item's name segment in expanded mode.
		FullWidth() int
		// Compact returns the usage-synopsis fragment for the item.
		Compact() string

		// writeName writes the expanded name segment (without help).
		writeName(sb *strings.Builder, width int, env EnvLookup)
		// rank is the item's position in the ordering table.
		rank() int
	}

	// Decor is a help-only entry such as a section heading.
	Decor struct {
		Help string
	}

	// Positional is an unnamed value slot.
	Positional struct {
		Metavar string
		Help    string
	}

	// Command is a subcommand entry. Short is 0 when there is no alias.
	Command struct {
		Name  string
		Short rune
		Help  string
	}

	// Flag is a boolean-style switch.
	Flag struct {
		Name ShortLong
		Help string
	}

	// Argument is a named option taking a value. Env names the environment
	// variable the value may also come from; "" when unbound.
	Argument struct {
		Name    ShortLong
		Metavar string
		Env     string
		Help    string
	}
)

var (
	_ Item = Decor{}
	_ Item = Positional{}
	_ Item = Command{}
	_ Item = Flag{}
	_ Item = Argument{}
)

// NewDecoration returns a Decor carrying help.
func NewDecoration(help string) Decor {
	return Decor{Help: help}
}

// Kind implements Item.
func (Decor) Kind() Kind { return KindDecor }

// Kind implements Item.
func (Positional) Kind() Kind { return KindPositional }

// Kind implements Item.
func (Command) Kind() Kind { return KindCommand }

// Kind implements Item.
func (Flag) Kind() Kind { return KindFlag }

// Kind implements Item.
func (Argument) Kind() Kind { return KindFlag }

// HelpText implements Item.
func (d Decor) HelpText() string { return d.Help }

// HelpText implements Item.
func (p Positional) HelpText() string { return p.Help }

// HelpText implements Item.
func (c Command) HelpText() string { return c.Help }

// HelpText implements Item.
func (f Flag) HelpText() string { return f.Help }

// HelpText implements Item.
func (a Argument) HelpText() string { return a.Help }

// FullWidth implements Item.
func (Decor) FullWidth() int { return 0 }

// FullWidth implements Item.
func (p Positional) FullWidth() int {
	return utf8.RuneCountInString(p.Metavar) + 2
}

// FullWidth implements Item.
func (c Command) FullWidth() int {
	w := utf8.RuneCountInString(c.Name)
	if c.Short != 0 {
		w += 3
	}
	return w
}

// FullWidth implements Item.
func (f Flag) FullWidth() int { return f.Name.FullWidth() }

// FullWidth implements Item.
func (a Argument) FullWidth() int {
	return a.Name.FullWidth() + utf8.RuneCountInString(a.Metavar) + 3
}

// Compact implements Item.
func (Decor) Compact() string { return "" }

// Compact implements Item.
func (p Positional) Compact() string { return "<" + p.Metavar + ">" }

// Compact implements Item. Every command renders the same placeholder.
func (Command) Compact() string { return "COMMAND ..." }

// Compact implements Item.
func (f Flag) Compact() string { return f.Name.String() }

// Compact implements Item.
func (a Argument) Compact() string { return a.Name.String() + " " + a.Metavar }

// Compact returns the usage-synopsis fragment of it.
func Compact(it Item) string { return it.Compact() }
