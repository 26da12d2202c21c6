// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value ColorScheme
		want  bool
	}{
		{ColorSchemeAuto, true},
		{ColorSchemeDark, true},
		{ColorSchemeLight, true},
		{ColorSchemeNone, true},
		{"", false},
		{"AUTO", false},
		{"blue", false},
	}

	for _, tt := range tests {
		valid, errs := tt.value.IsValid()
		if valid != tt.want {
			t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.value, valid, tt.want)
		}
		if !tt.want {
			if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidColorScheme) {
				t.Errorf("ColorScheme(%q) errors = %v, want ErrInvalidColorScheme", tt.value, errs)
			}
		}
	}
}

func TestMarkdownStyle_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []MarkdownStyle{MarkdownStyleAuto, MarkdownStyleDark, MarkdownStyleLight, MarkdownStyleNoTTY, MarkdownStyleASCII} {
		if valid, errs := s.IsValid(); !valid {
			t.Errorf("MarkdownStyle(%q) should be valid, got %v", s, errs)
		}
	}

	valid, errs := MarkdownStyle("dracula").IsValid()
	if valid {
		t.Fatal("dracula is not offered")
	}
	var styleErr *InvalidMarkdownStyleError
	if !errors.As(errs[0], &styleErr) || styleErr.Value != "dracula" {
		t.Errorf("expected *InvalidMarkdownStyleError for dracula, got %v", errs)
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UI.ColorScheme = "blue"
	cfg.Render.MarkdownStyle = "rainbow"

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("config should be invalid")
	}
	if len(errs) != 1 {
		t.Fatalf("expected one aggregated error, got %d", len(errs))
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(cfgErr.FieldErrors))
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Error("expected ErrInvalidConfig")
	}
}
