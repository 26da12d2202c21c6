// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "parse description"},
			expected: "failed to parse description",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "parse description", Resource: "./tar.cue"},
			expected: "failed to parse description: ./tar.cue",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "load configuration", Cause: errors.New("syntax error at line 5")},
			expected: "failed to load configuration: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "parse description",
				Resource:  "./tar.cue",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to parse description: ./tar.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := New(0, "render help page").Wrap(sentinel)

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find *ActionableError")
	}
	if ae.Unwrap() != sentinel {
		t.Error("Unwrap() should return the cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("unexpected token")
	err := &ActionableError{
		Operation:   "parse description",
		Resource:    "tar.cue",
		Suggestions: []string{"Fix the syntax", "Run 'clidoc check tar.cue'"},
		Cause:       inner,
	}

	short := err.Format(false)
	wantShort := "failed to parse description: tar.cue: unexpected token\n" +
		"\n  • Fix the syntax" +
		"\n  • Run 'clidoc check tar.cue'"
	if short != wantShort {
		t.Errorf("Format(false) =\n%q\nwant\n%q", short, wantShort)
	}

	verbose := err.Format(true)
	if !strings.HasPrefix(verbose, wantShort+"\n\nError chain:") {
		t.Errorf("Format(true) should extend Format(false) with the chain, got\n%s", verbose)
	}
	if !strings.Contains(verbose, "\n  1. unexpected token") {
		t.Errorf("Format(true) should list the cause, got\n%s", verbose)
	}

	bare := &ActionableError{Operation: "watch"}
	if got := bare.Format(true); got != "failed to watch" {
		t.Errorf("Format(true) without cause = %q", got)
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	t.Parallel()

	if (&ActionableError{Operation: "x"}).HasSuggestions() {
		t.Error("HasSuggestions() = true without suggestions")
	}
	if !(&ActionableError{Operation: "x", Suggestions: []string{"y"}}).HasSuggestions() {
		t.Error("HasSuggestions() = false with a suggestion")
	}
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	b := New(ConfigLoadFailedId, "load configuration").
		On("/etc/clidoc/config.cue").
		Suggest("first").
		Suggest("second")
	err := b.Wrap(cause)

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("Wrap() returned %T", err)
	}
	if ae.Operation != "load configuration" || ae.Resource != "/etc/clidoc/config.cue" {
		t.Errorf("unexpected operation/resource: %+v", ae)
	}
	if len(ae.Suggestions) != 2 || ae.Suggestions[1] != "second" {
		t.Errorf("Suggestions = %v", ae.Suggestions)
	}
	if ae.Issue != ConfigLoadFailedId {
		t.Errorf("Issue = %d, want %d", ae.Issue, ConfigLoadFailedId)
	}
	if ae.Cause != cause {
		t.Errorf("Cause = %v, want %v", ae.Cause, cause)
	}
	if g := ae.Guidance(); g == nil || g.Id() != ConfigLoadFailedId {
		t.Errorf("Guidance() = %v, want the config entry", g)
	}

	// Suggestions added after Wrap do not leak into earlier errors.
	b.Suggest("third")
	if len(ae.Suggestions) != 2 {
		t.Errorf("earlier error changed: %v", ae.Suggestions)
	}
	if other := b.Wrap(nil); other == err {
		t.Error("Wrap() should return a distinct error per call")
	}
}

func TestBuilderNilCause(t *testing.T) {
	t.Parallel()

	err := New(WatchFailedId, "watch description").Wrap(nil)
	if err == nil || err.Error() != "failed to watch description" {
		t.Errorf("Wrap(nil) = %v", err)
	}
	if (&ActionableError{Operation: "x"}).Guidance() != nil {
		t.Error("Guidance() without an issue should be nil")
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	if Wrap(nil, "op", "res") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	cause := errors.New("denied")
	err := Wrap(cause, "read description", "tar.cue")
	if err.Error() != "failed to read description: tar.cue: denied" {
		t.Errorf("Error() = %q", err.Error())
	}
	var ae *ActionableError
	if !errors.As(err, &ae) || ae.Issue != 0 {
		t.Errorf("Wrap() should carry no catalog entry: %+v", ae)
	}
}
