// SPDX-License-Identifier: MPL-2.0

package item

import "fmt"

const (
	// KindFlag covers Flag and Argument items.
	KindFlag Kind = iota + 1
	// KindCommand covers Command items.
	KindCommand
	// KindDecor covers Decor items.
	KindDecor
	// KindPositional covers Positional items.
	KindPositional
)

// Kind is the coarse category of an Item.
type Kind int

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindCommand:
		return "command"
	case KindDecor:
		return "decor"
	case KindPositional:
		return "positional"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsCommand reports whether it is a Command.
func IsCommand(it Item) bool {
	return it.Kind() == KindCommand
}

// IsFlag reports whether it belongs with the options: flags, arguments and
// decorations.
func IsFlag(it Item) bool {
	switch it.Kind() {
	case KindFlag, KindDecor:
		return true
	default:
		return false
	}
}

// IsPositional reports whether it is a Positional with help text. Positionals
// without help only appear in the usage synopsis.
func IsPositional(it Item) bool {
	return it.Kind() == KindPositional && it.HelpText() != ""
}
