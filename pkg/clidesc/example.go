// SPDX-License-Identifier: MPL-2.0

package clidesc

import (
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// CommandLine renders the example as a shell command line for program. Each
// argument is quoted only when the shell would otherwise split or expand it.
func (e Example) CommandLine(program string) string {
	parts := make([]string, 0, len(e.Args)+1)
	parts = append(parts, program)
	for _, arg := range e.Args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		// Only strings with NUL bytes cannot be quoted for bash.
		return strconv.Quote(s)
	}
	return quoted
}
