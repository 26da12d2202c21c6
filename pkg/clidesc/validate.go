// SPDX-License-Identifier: MPL-2.0

package clidesc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidDescription is wrapped by ValidationErrors.
	ErrInvalidDescription = errors.New("invalid description")

	programNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	nameRegex        = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	aliasRegex       = regexp.MustCompile(`^[A-Za-z0-9]$`)
	envNameRegex     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

type (
	// ValidationError is a single problem found in a description.
	ValidationError struct {
		// Field is the path of the offending field, e.g. "entries[2].short[0]".
		Field   string
		Message string
	}

	// ValidationErrors collects every problem found by Validate.
	ValidationErrors []ValidationError

	// seenNames tracks aliases already declared, keyed by alias, valued by the
	// field that declared it first.
	seenNames struct {
		short    map[string]string
		long     map[string]string
		commands map[string]string
	}
)

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return v[0].Error()
	}
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d validation errors:\n  %s", len(v), strings.Join(msgs, "\n  "))
}

// Unwrap returns ErrInvalidDescription for errors.Is() compatibility.
func (v ValidationErrors) Unwrap() error { return ErrInvalidDescription }

// Validate checks the description and returns all problems at once, or nil.
func (d *Description) Validate() error {
	var errs ValidationErrors

	if !programNameRegex.MatchString(d.Program) {
		errs = append(errs, ValidationError{
			Field:   "program",
			Message: fmt.Sprintf("invalid program name %q", d.Program),
		})
	}

	seen := seenNames{
		short:    make(map[string]string),
		long:     make(map[string]string),
		commands: make(map[string]string),
	}
	if d.HasHelpFlag() {
		seen.short["h"] = "help flag"
		seen.long["help"] = "help flag"
	}

	for i := range d.Entries {
		field := fmt.Sprintf("entries[%d]", i)
		errs = append(errs, d.Entries[i].validate(field, &seen)...)
	}

	for i, ex := range d.Examples {
		if len(ex.Args) == 0 && ex.Description == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("examples[%d]", i),
				Message: "example needs a description or arguments",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate checks a single entry in isolation.
func (e *Entry) Validate() error {
	seen := seenNames{
		short:    make(map[string]string),
		long:     make(map[string]string),
		commands: make(map[string]string),
	}
	if errs := e.validate("entry", &seen); len(errs) > 0 {
		return errs
	}
	return nil
}

func (e *Entry) validate(field string, seen *seenNames) ValidationErrors {
	var errs ValidationErrors
	add := func(sub, format string, args ...any) {
		f := field
		if sub != "" {
			f += "." + sub
		}
		errs = append(errs, ValidationError{Field: f, Message: fmt.Sprintf(format, args...)})
	}

	switch e.Kind {
	case EntryHeading:
		if e.Help == "" {
			add("help", "heading requires help text")
		}
		e.rejectFields(add, "short", "long", "metavar", "env", "name", "alias")
	case EntryFlag:
		e.validateAliases(field, seen, &errs)
		e.rejectFields(add, "metavar", "env", "name", "alias")
	case EntryArgument:
		e.validateAliases(field, seen, &errs)
		if e.Metavar == "" {
			add("metavar", "argument requires a metavar")
		}
		if e.Env != "" && !envNameRegex.MatchString(e.Env) {
			add("env", "invalid environment variable name %q", e.Env)
		}
		e.rejectFields(add, "name", "alias")
	case EntryPositional:
		if e.Metavar == "" {
			add("metavar", "positional requires a metavar")
		}
		e.rejectFields(add, "short", "long", "env", "name", "alias")
	case EntryCommand:
		if !nameRegex.MatchString(e.Name) {
			add("name", "invalid command name %q", e.Name)
		} else if prev, dup := seen.commands[e.Name]; dup {
			add("name", "command %q already declared by %s", e.Name, prev)
		} else {
			seen.commands[e.Name] = field
		}
		if e.Alias != "" {
			if !aliasRegex.MatchString(e.Alias) {
				add("alias", "invalid command alias %q", e.Alias)
			} else if prev, dup := seen.commands[e.Alias]; dup {
				add("alias", "command alias %q already declared by %s", e.Alias, prev)
			} else {
				seen.commands[e.Alias] = field
			}
		}
		e.rejectFields(add, "short", "long", "metavar", "env")
	default:
		add("kind", "unknown entry kind %q", e.Kind)
	}

	return errs
}

func (e *Entry) validateAliases(field string, seen *seenNames, errs *ValidationErrors) {
	if len(e.Short) == 0 && len(e.Long) == 0 {
		*errs = append(*errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s requires a short or long name", e.Kind),
		})
		return
	}

	for i, s := range e.Short {
		f := fmt.Sprintf("%s.short[%d]", field, i)
		switch {
		case !aliasRegex.MatchString(s):
			*errs = append(*errs, ValidationError{Field: f, Message: fmt.Sprintf("invalid short name %q", s)})
		case seen.short[s] != "":
			*errs = append(*errs, ValidationError{Field: f, Message: fmt.Sprintf("short name -%s already declared by %s", s, seen.short[s])})
		default:
			seen.short[s] = field
		}
	}
	for i, l := range e.Long {
		f := fmt.Sprintf("%s.long[%d]", field, i)
		switch {
		case !nameRegex.MatchString(l):
			*errs = append(*errs, ValidationError{Field: f, Message: fmt.Sprintf("invalid long name %q", l)})
		case seen.long[l] != "":
			*errs = append(*errs, ValidationError{Field: f, Message: fmt.Sprintf("long name --%s already declared by %s", l, seen.long[l])})
		default:
			seen.long[l] = field
		}
	}
}

// rejectFields reports fields that are set but meaningless for the entry kind.
func (e *Entry) rejectFields(add func(sub, format string, args ...any), fields ...string) {
	for _, f := range fields {
		var set bool
		switch f {
		case "short":
			set = len(e.Short) > 0
		case "long":
			set = len(e.Long) > 0
		case "metavar":
			set = e.Metavar != ""
		case "env":
			set = e.Env != ""
		case "name":
			set = e.Name != ""
		case "alias":
			set = e.Alias != ""
		}
		if set {
			add(f, "not allowed for %s entries", e.Kind)
		}
	}
}

// firstRune returns the single rune of an alias already checked by aliasRegex.
func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
