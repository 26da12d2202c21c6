// SPDX-License-Identifier: MPL-2.0

package item

import (
	"fmt"
	"unicode/utf8"
)

const (
	// FormShort is a name with only a short alias, e.g. "-v".
	FormShort Form = iota + 1
	// FormLong is a name with only a long alias, e.g. "--verbose".
	FormLong
	// FormBoth is a name with a short and a long alias, e.g. "-v, --verbose".
	FormBoth
)

// longIndent keeps long-only names aligned with the "--" of "-c, --name".
const longIndent = "    "

type (
	// Form identifies which aliases a ShortLong carries.
	Form int

	// ShortLong is the name identity of a flag or argument. Build it with
	// Short, Long or Both; the zero value is not a valid name.
	ShortLong struct {
		form  Form
		short rune
		long  string
	}
)

// Short returns a name with only a short alias.
func Short(short rune) ShortLong {
	return ShortLong{form: FormShort, short: short}
}

// Long returns a name with only a long alias.
func Long(long string) ShortLong {
	return ShortLong{form: FormLong, long: long}
}

// Both returns a name with a short and a long alias.
func Both(short rune, long string) ShortLong {
	return ShortLong{form: FormBoth, short: short, long: long}
}

// String returns the form name.
func (f Form) String() string {
	switch f {
	case FormShort:
		return "short"
	case FormLong:
		return "long"
	case FormBoth:
		return "short+long"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Form reports which aliases are present.
func (sl ShortLong) Form() Form { return sl.form }

// ShortName returns the short alias, if any.
func (sl ShortLong) ShortName() (rune, bool) {
	return sl.short, sl.form == FormShort || sl.form == FormBoth
}

// LongName returns the long alias, if any.
func (sl ShortLong) LongName() (string, bool) {
	return sl.long, sl.form == FormLong || sl.form == FormBoth
}

// IsZero reports whether sl was not built by one of the constructors.
func (sl ShortLong) IsZero() bool { return sl.form == 0 }

// FullWidth returns the number of columns the expanded form occupies.
// Long-only names reserve the same columns as short+long pairs.
func (sl ShortLong) FullWidth() int {
	switch sl.form {
	case FormShort:
		return 2
	case FormLong, FormBoth:
		return 6 + utf8.RuneCountInString(sl.long)
	default:
		return 0
	}
}

// String renders the compact form: the short alias when present, the long
// alias otherwise.
func (sl ShortLong) String() string {
	switch sl.form {
	case FormShort, FormBoth:
		return "-" + string(sl.short)
	case FormLong:
		return "--" + sl.long
	default:
		return ""
	}
}

// Expanded renders the column-aligned form used in the help listing.
func (sl ShortLong) Expanded() string {
	switch sl.form {
	case FormShort:
		return "-" + string(sl.short)
	case FormLong:
		return longIndent + "--" + sl.long
	case FormBoth:
		return "-" + string(sl.short) + ", --" + sl.long
	default:
		return ""
	}
}
