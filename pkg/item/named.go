// SPDX-License-Identifier: MPL-2.0

package item

// Named collects the aliases declared for a flag or argument. Aliases may
// repeat; the first of each kind is the one displayed.
type Named struct {
	Short []rune
	Long  []string
	Env   []string
	Help  string
}

// ShortLong returns the displayed name: the first short alias and the first
// long alias present.
//
// ShortLong panics when n has neither a short nor a long alias. Descriptions
// built from user input must be validated before reaching this point.
func (n *Named) ShortLong() ShortLong {
	switch {
	case len(n.Short) == 0 && len(n.Long) == 0:
		panic("item: Named should have either short or long name")
	case len(n.Short) == 0:
		return Long(n.Long[0])
	case len(n.Long) == 0:
		return Short(n.Short[0])
	default:
		return Both(n.Short[0], n.Long[0])
	}
}

// Flag returns the switch described by n.
func (n *Named) Flag() Flag {
	return Flag{Name: n.ShortLong(), Help: n.Help}
}

// Argument returns the value-taking option described by n. The first env
// name, if any, is bound for annotation.
func (n *Named) Argument(metavar string) Argument {
	a := Argument{Name: n.ShortLong(), Metavar: metavar, Help: n.Help}
	if len(n.Env) > 0 {
		a.Env = n.Env[0]
	}
	return a
}
