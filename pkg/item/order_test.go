// SPDX-License-Identifier: MPL-2.0

package item

import (
	"slices"
	"testing"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Item
		want int
	}{
		{"decor before positional", Decor{Help: "z"}, Positional{Metavar: "A"}, -1},
		{"positional before command", Positional{Metavar: "Z"}, Command{Name: "a"}, -1},
		{"command before flag", Command{Name: "z"}, Flag{Name: Short('a')}, -1},
		{"flag before argument", Flag{Name: Long("zzz")}, Argument{Name: Short('a'), Metavar: "A"}, -1},
		{"argument after decor", Argument{Name: Short('a'), Metavar: "A"}, Decor{}, 1},
		{"decor help absent first", Decor{}, Decor{Help: "x"}, -1},
		{"positional by metavar", Positional{Metavar: "A", Help: "z"}, Positional{Metavar: "B"}, -1},
		{"command alias absent first", Command{Name: "list"}, Command{Name: "list", Short: 'l'}, -1},
		{"command by name", Command{Name: "b", Short: 'a'}, Command{Name: "a", Short: 'z'}, 1},
		{"flag short form before long form", Flag{Name: Short('z')}, Flag{Name: Long("a")}, -1},
		{"flag long form before both", Flag{Name: Long("z")}, Flag{Name: Both('a', "a")}, -1},
		{"flag by long name", Flag{Name: Both('v', "a")}, Flag{Name: Both('v', "b")}, -1},
		{"argument env absent first", Argument{Name: Short('f'), Metavar: "F"}, Argument{Name: Short('f'), Metavar: "F", Env: "X"}, -1},
		{"argument equal", Argument{Name: Short('f'), Metavar: "F", Help: "h"}, Argument{Name: Short('f'), Metavar: "F", Help: "h"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(a, b) = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(b, a) = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	t.Parallel()

	items := []Item{
		Argument{Name: Both('f', "file"), Metavar: "FILE"},
		Command{Name: "list"},
		Flag{Name: Both('v', "verbose")},
		Positional{Metavar: "PATH"},
		Decor{Help: "Heading"},
		Flag{Name: Short('q')},
	}
	Sort(items)

	want := []Item{
		Decor{Help: "Heading"},
		Positional{Metavar: "PATH"},
		Command{Name: "list"},
		Flag{Name: Short('q')},
		Flag{Name: Both('v', "verbose")},
		Argument{Name: Both('f', "file"), Metavar: "FILE"},
	}
	if !slices.Equal(items, want) {
		t.Errorf("Sort() = %v, want %v", items, want)
	}
}
