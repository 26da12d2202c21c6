// SPDX-License-Identifier: MPL-2.0

package item

import "testing"

func TestNamedShortLong(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		named Named
		want  ShortLong
	}{
		{"short only", Named{Short: []rune{'v', 'V'}}, Short('v')},
		{"long only", Named{Long: []string{"verbose", "loud"}}, Long("verbose")},
		{"both picks first of each", Named{Short: []rune{'v', 'x'}, Long: []string{"verbose", "loud"}}, Both('v', "verbose")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.named.ShortLong(); got != tt.want {
				t.Errorf("ShortLong() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNamedShortLongPanicsWhenEmpty(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for Named without aliases")
		}
	}()

	n := Named{Env: []string{"FOO"}}
	n.ShortLong()
}

func TestNamedItems(t *testing.T) {
	t.Parallel()

	n := Named{
		Short: []rune{'f'},
		Long:  []string{"file"},
		Env:   []string{"ARCHIVE", "TAR_FILE"},
		Help:  "Archive to use",
	}

	flag := n.Flag()
	if flag != (Flag{Name: Both('f', "file"), Help: "Archive to use"}) {
		t.Errorf("Flag() = %+v", flag)
	}

	arg := n.Argument("FILE")
	want := Argument{Name: Both('f', "file"), Metavar: "FILE", Env: "ARCHIVE", Help: "Archive to use"}
	if arg != want {
		t.Errorf("Argument() = %+v, want %+v", arg, want)
	}

	noEnv := Named{Long: []string{"out"}}
	if got := noEnv.Argument("DIR").Env; got != "" {
		t.Errorf("Argument().Env = %q, want empty", got)
	}
}
