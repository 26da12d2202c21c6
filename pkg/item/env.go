// SPDX-License-Identifier: MPL-2.0

package item

import (
	"os"
	"strconv"
	"unicode/utf8"
)

// EnvLookup reads a named environment variable. The boolean is false when the
// variable is unset.
type EnvLookup func(name string) (string, bool)

// OSEnv reads from the process environment.
func OSEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnv returns a lookup backed by vars. The map is not copied.
func MapEnv(vars map[string]string) EnvLookup {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// envAnnotation describes the current state of the variable name. Missing and
// undecodable values are reported as text, never as errors. Set values are
// quoted with strconv.Quote, so control characters appear as Go escapes
// (ESC is "\x1b", U+2028 is "\u2028").
func envAnnotation(lookup EnvLookup, name string) string {
	v, ok := lookup(name)
	switch {
	case !ok:
		return ": N/A"
	case !utf8.ValidString(v):
		return ": current value is not utf8"
	default:
		return " = " + strconv.Quote(v)
	}
}
