// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto colors output only when stdout is a terminal.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces colors tuned for dark backgrounds.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces colors tuned for light backgrounds.
	ColorSchemeLight ColorScheme = "light"
	// ColorSchemeNone disables colors.
	ColorSchemeNone ColorScheme = "none"

	// MarkdownStyleAuto picks the glamour style from the terminal background.
	MarkdownStyleAuto MarkdownStyle = "auto"
	// MarkdownStyleDark is glamour's dark style.
	MarkdownStyleDark MarkdownStyle = "dark"
	// MarkdownStyleLight is glamour's light style.
	MarkdownStyleLight MarkdownStyle = "light"
	// MarkdownStyleNoTTY is glamour's style for non-terminal output.
	MarkdownStyleNoTTY MarkdownStyle = "notty"
	// MarkdownStyleASCII is glamour's plain ASCII style.
	MarkdownStyleASCII MarkdownStyle = "ascii"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidMarkdownStyle is returned when a MarkdownStyle value is not recognized.
	ErrInvalidMarkdownStyle = errors.New("invalid markdown style")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// MarkdownStyle names a glamour standard style.
	MarkdownStyle string

	// InvalidMarkdownStyleError is returned when a MarkdownStyle value is not recognized.
	InvalidMarkdownStyleError struct {
		Value MarkdownStyle
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// UI configures terminal output
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Render holds the defaults of the render command
		Render RenderConfig `json:"render" mapstructure:"render"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and detailed error output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// RenderConfig holds help page rendering defaults. Command-line flags
	// take precedence.
	RenderConfig struct {
		// EnvAnnotations shows [env:NAME ...] annotations on arguments
		EnvAnnotations bool `json:"env_annotations" mapstructure:"env_annotations"`
		// SortItems orders every section instead of keeping declaration order
		SortItems bool `json:"sort_items" mapstructure:"sort_items"`
		// Markdown renders about and footer text as markdown
		Markdown bool `json:"markdown" mapstructure:"markdown"`
		// MarkdownStyle selects the glamour style
		MarkdownStyle MarkdownStyle `json:"markdown_style" mapstructure:"markdown_style"`
	}
)

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight, ColorSchemeNone:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light, none)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the MarkdownStyle.
func (s MarkdownStyle) String() string { return string(s) }

// IsValid returns whether the MarkdownStyle is a supported glamour style.
func (s MarkdownStyle) IsValid() (bool, []error) {
	switch s {
	case MarkdownStyleAuto, MarkdownStyleDark, MarkdownStyleLight, MarkdownStyleNoTTY, MarkdownStyleASCII:
		return true, nil
	default:
		return false, []error{&InvalidMarkdownStyleError{Value: s}}
	}
}

// Error implements the error interface for InvalidMarkdownStyleError.
func (e *InvalidMarkdownStyleError) Error() string {
	return fmt.Sprintf("invalid markdown style %q (valid: auto, dark, light, notty, ascii)", e.Value)
}

// Unwrap returns ErrInvalidMarkdownStyle for errors.Is() compatibility.
func (e *InvalidMarkdownStyleError) Unwrap() error { return ErrInvalidMarkdownStyle }

// IsValid returns whether the Config has valid fields.
// Environment overrides bypass the CUE schema, so values are checked again
// after unmarshaling.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Render.MarkdownStyle.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is()
// matches both the aggregate and the individual sentinels.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Render: RenderConfig{
			EnvAnnotations: true,
			SortItems:      false,
			Markdown:       true,
			MarkdownStyle:  MarkdownStyleAuto,
		},
	}
}
