// SPDX-License-Identifier: MPL-2.0

// Package clidesc loads command-line description documents and converts them
// into renderable items.
//
// A description names a program and lists its entries (headings, flags,
// arguments, positionals and commands) together with optional about text,
// footer and usage examples. Documents may be written in CUE (validated
// against the embedded #Description schema), TOML or YAML; the format is
// chosen from the file extension.
//
// All documents go through Validate before conversion, so a description that
// parses successfully always converts into items without panicking.
package clidesc
