// SPDX-License-Identifier: MPL-2.0

package item

import (
	"cmp"
	"slices"
)

// Ordering table for Compare. Items of different variants order by these
// ranks; the values are part of the package contract and must not be
// reordered.
const (
	rankDecor = iota
	rankPositional
	rankCommand
	rankFlag
	rankArgument
)

// Ordering table for CompareShortLong.
var formRank = map[Form]int{
	FormShort: 0,
	FormLong:  1,
	FormBoth:  2,
}

func (Decor) rank() int      { return rankDecor }
func (Positional) rank() int { return rankPositional }
func (Command) rank() int    { return rankCommand }
func (Flag) rank() int       { return rankFlag }
func (Argument) rank() int   { return rankArgument }

// Compare returns -1, 0 or +1 ordering a before, equal to, or after b.
//
// Variants order Decor < Positional < Command < Flag < Argument. Items of the
// same variant compare field by field in declaration order; absent values
// (empty help, no short alias, no env binding) sort before present ones.
func Compare(a, b Item) int {
	if c := cmp.Compare(a.rank(), b.rank()); c != 0 {
		return c
	}

	switch x := a.(type) {
	case Decor:
		y := b.(Decor)
		return cmp.Compare(x.Help, y.Help)
	case Positional:
		y := b.(Positional)
		return cmp.Or(
			cmp.Compare(x.Metavar, y.Metavar),
			cmp.Compare(x.Help, y.Help),
		)
	case Command:
		y := b.(Command)
		return cmp.Or(
			cmp.Compare(x.Name, y.Name),
			cmp.Compare(x.Short, y.Short),
			cmp.Compare(x.Help, y.Help),
		)
	case Flag:
		y := b.(Flag)
		return cmp.Or(
			CompareShortLong(x.Name, y.Name),
			cmp.Compare(x.Help, y.Help),
		)
	case Argument:
		y := b.(Argument)
		return cmp.Or(
			CompareShortLong(x.Name, y.Name),
			cmp.Compare(x.Metavar, y.Metavar),
			cmp.Compare(x.Env, y.Env),
			cmp.Compare(x.Help, y.Help),
		)
	}
	panic("item: unknown Item implementation")
}

// CompareShortLong orders names Short < Long < Both, then by short alias and
// long alias.
func CompareShortLong(a, b ShortLong) int {
	return cmp.Or(
		cmp.Compare(formRank[a.form], formRank[b.form]),
		cmp.Compare(a.short, b.short),
		cmp.Compare(a.long, b.long),
	)
}

// Sort orders items by Compare. Equal items keep their relative order.
func Sort(items []Item) {
	slices.SortStableFunc(items, Compare)
}
