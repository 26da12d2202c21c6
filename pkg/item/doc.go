// SPDX-License-Identifier: MPL-2.0

// Package item models the documented elements of a command-line surface and
// renders them as text.
//
// An Item is one of Decor, Positional, Command, Flag or Argument. Each item has
// two textual forms:
//
//   - the compact form, used inside a one-line usage synopsis
//     (e.g. "-f FILE" or "<PATH>")
//   - the expanded form, used as a row of the aligned option listing printed
//     by --help (e.g. "    -f, --file <FILE>  Archive to operate on")
//
// Expanded rendering needs a column width shared by every row of a group. The
// caller computes it as the maximum FullWidth of the group; rendering with a
// narrower width is a programming error and panics with a *WidthError.
//
// Arguments bound to an environment variable are annotated with the variable's
// current value. The lookup is injected through EnvLookup so that rendering
// stays deterministic under test.
package item
