// SPDX-License-Identifier: MPL-2.0

package clidesc

const (
	// EntryHeading is a section heading rendered in the option listing.
	EntryHeading EntryKind = "heading"
	// EntryFlag is a boolean switch.
	EntryFlag EntryKind = "flag"
	// EntryArgument is a named option taking a value.
	EntryArgument EntryKind = "argument"
	// EntryPositional is an unnamed value slot.
	EntryPositional EntryKind = "positional"
	// EntryCommand is a subcommand.
	EntryCommand EntryKind = "command"
)

type (
	// EntryKind selects the item an Entry converts into.
	EntryKind string

	// Description is a parsed description document.
	Description struct {
		// Program is the executable name shown in the usage line.
		Program string `json:"program" toml:"program" yaml:"program"`
		// About is markdown text printed between usage and the listings.
		About string `json:"about,omitempty" toml:"about,omitempty" yaml:"about,omitempty"`
		// Footer is markdown text printed after everything else.
		Footer string `json:"footer,omitempty" toml:"footer,omitempty" yaml:"footer,omitempty"`
		// HelpFlag controls the implicit "-h, --help" flag; nil means enabled.
		HelpFlag *bool `json:"help_flag,omitempty" toml:"help_flag,omitempty" yaml:"help_flag,omitempty"`
		// Entries are the documented elements in declaration order.
		Entries []Entry `json:"entries,omitempty" toml:"entries,omitempty" yaml:"entries,omitempty"`
		// Examples are sample invocations.
		Examples []Example `json:"examples,omitempty" toml:"examples,omitempty" yaml:"examples,omitempty"`

		// FilePath is the document the description was read from.
		FilePath string `json:"-" toml:"-" yaml:"-"`
	}

	// Entry is one documented element.
	Entry struct {
		Kind EntryKind `json:"kind" toml:"kind" yaml:"kind"`
		Help string    `json:"help,omitempty" toml:"help,omitempty" yaml:"help,omitempty"`
		// Short lists single-character aliases (flag, argument).
		Short []string `json:"short,omitempty" toml:"short,omitempty" yaml:"short,omitempty"`
		// Long lists long aliases (flag, argument).
		Long []string `json:"long,omitempty" toml:"long,omitempty" yaml:"long,omitempty"`
		// Metavar names the value placeholder (argument, positional).
		Metavar string `json:"metavar,omitempty" toml:"metavar,omitempty" yaml:"metavar,omitempty"`
		// Env binds an environment variable (argument).
		Env string `json:"env,omitempty" toml:"env,omitempty" yaml:"env,omitempty"`
		// Name is the command name (command).
		Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
		// Alias is a one-character command alias (command).
		Alias string `json:"alias,omitempty" toml:"alias,omitempty" yaml:"alias,omitempty"`
		// Required marks the entry mandatory in the usage line.
		Required bool `json:"required,omitempty" toml:"required,omitempty" yaml:"required,omitempty"`
	}

	// Example is a sample invocation of the program.
	Example struct {
		Description string   `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
		Args        []string `json:"args" toml:"args" yaml:"args"`
	}
)

// String returns the kind name.
func (k EntryKind) String() string { return string(k) }

// HasHelpFlag reports whether the implicit help flag is listed.
func (d *Description) HasHelpFlag() bool {
	return d.HelpFlag == nil || *d.HelpFlag
}
