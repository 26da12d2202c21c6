// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	cueerrors "cuelang.org/go/cue/errors"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "test.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		original := errors.New("some error")
		err := FormatError(original, "test.cue")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.HasPrefix(err.Error(), "test.cue: ") {
			t.Errorf("error should start with the file path, got: %v", err)
		}
		if !errors.Is(err, original) {
			t.Errorf("error should wrap the original error, got: %v", err)
		}
	})
}

func TestFormatError_CUE(t *testing.T) {
	t.Parallel()

	_, err := Validate(testSchema, "#Doc", []byte(`name: "x", count: -1`), WithFilename("demo.cue"))
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FileError, got %T: %v", err, err)
	}
	if fe.File != "demo.cue" || len(fe.Problems) == 0 {
		t.Errorf("FileError = %+v", fe)
	}
	if !strings.HasPrefix(err.Error(), "demo.cue: count: ") {
		t.Errorf("error %q should name the file and field", err)
	}

	// The CUE error stays reachable for callers that classify it.
	var ce cueerrors.Error
	if !errors.As(err, &ce) {
		t.Error("CUE error should be reachable through Unwrap")
	}
}

func TestFileError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	tests := []struct {
		name     string
		problems []string
		want     string
	}{
		{"one problem", []string{"count: out of bound"}, "a.cue: count: out of bound"},
		{"several problems", []string{"count: out of bound", "extra: field not allowed"},
			"a.cue: validation failed:\n  count: out of bound\n  extra: field not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := &FileError{File: "a.cue", Problems: tt.problems, Err: cause}
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(err, cause) {
				t.Error("FileError should unwrap to its cause")
			}
		})
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty path", nil, ""},
		{"single element", []string{"program"}, "program"},
		{"nested", []string{"ui", "color_scheme"}, "ui.color_scheme"},
		{"array index", []string{"entries", "2", "short", "0"}, "entries[2].short[0]"},
		{"leading number is not an index", []string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "ok.cue"); err != nil {
		t.Errorf("CheckFileSize at limit = %v, want nil", err)
	}
	err := CheckFileSize(make([]byte, 11), 10, "big.cue")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("CheckFileSize over limit = %v, want ErrFileTooLarge", err)
	}
}
