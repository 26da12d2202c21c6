// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type (
	// ActionableError is a user-facing failure: the operation that failed,
	// the resource it failed on, hints for fixing it and the catalog entry
	// holding longer guidance.
	//
	//	return issue.New(issue.DescriptionInvalidId, "load description").
	//		On("tar.cue").
	//		Suggest("Fix the fields listed above").
	//		Wrap(err)
	ActionableError struct {
		// Operation is a verb phrase, e.g. "load description".
		Operation string
		// Resource is the file or entity involved; "" when there is none.
		Resource    string
		Suggestions []string
		// Issue links a catalog entry; zero links none.
		Issue Id
		Cause error
	}

	// Builder assembles an ActionableError. Start one with New.
	Builder struct {
		ae ActionableError
	}
)

// New starts an error for operation, linked to the catalog entry id.
func New(id Id, operation string) *Builder {
	return &Builder{ae: ActionableError{Operation: operation, Issue: id}}
}

// On sets the resource the operation failed on.
func (b *Builder) On(resource string) *Builder {
	b.ae.Resource = resource
	return b
}

// Suggest appends remediation hints.
func (b *Builder) Suggest(hints ...string) *Builder {
	b.ae.Suggestions = append(b.ae.Suggestions, hints...)
	return b
}

// Wrap finishes the error around cause, which may be nil. The builder can be
// reused; every call returns a distinct error.
func (b *Builder) Wrap(cause error) error {
	ae := b.ae
	ae.Suggestions = slices.Clone(b.ae.Suggestions)
	ae.Cause = cause
	return &ae
}

// Wrap annotates err with the operation and resource, without catalog
// guidance. It returns nil when err is nil.
func Wrap(err error, operation, resource string) error {
	if err == nil {
		return nil
	}
	return New(0, operation).On(resource).Wrap(err)
}

// Error returns "failed to <operation>: <resource>: <cause>", omitting the
// parts that are empty.
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error { return e.Cause }

// Format returns the message followed by one bullet per suggestion. Verbose
// output appends the numbered chain of wrapped errors.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		sb.WriteByte('\n')
		for _, s := range e.Suggestions {
			sb.WriteString("\n  • " + s)
		}
	}

	if verbose && e.Cause != nil {
		sb.WriteString("\n\nError chain:")
		depth := 1
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			fmt.Fprintf(&sb, "\n  %d. %s", depth, err)
			depth++
		}
	}

	return sb.String()
}

// HasSuggestions reports whether any remediation hint is attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// Guidance returns the linked catalog entry, or nil.
func (e *ActionableError) Guidance() *Issue {
	return Get(e.Issue)
}
