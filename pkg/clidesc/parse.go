// SPDX-License-Identifier: MPL-2.0

package clidesc

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/clidoc/clidoc/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FormatCUE is a CUE document validated against #Description.
	FormatCUE Format = "cue"
	// FormatTOML is a TOML document.
	FormatTOML Format = "toml"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

var (
	//go:embed clidesc_schema.cue
	descriptionSchema string

	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported description format")
)

// Format is the encoding of a description document.
type Format string

// FormatFor picks the document format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (use .cue, .toml, .yaml or .yml)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Parse reads and validates the description at path.
func Parse(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes decodes a description held in memory. path selects the format
// and appears in error messages.
func ParseBytes(data []byte, path string) (*Description, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, err
	}

	var desc *Description
	switch format {
	case FormatCUE:
		desc, err = cueutil.Decode[Description](descriptionSchema, "#Description", data, cueutil.WithFilename(path))
	case FormatTOML:
		desc, err = decodeTOML(data, path)
	case FormatYAML:
		desc, err = decodeYAML(data, path)
	}
	if err != nil {
		return nil, err
	}

	desc.FilePath = path
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

func decodeTOML(data []byte, path string) (*Description, error) {
	var desc Description
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&desc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, 0, len(strict.Errors))
			for _, e := range strict.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return nil, fmt.Errorf("%s: unknown field(s): %s", path, strings.Join(keys, ", "))
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %s", path, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &desc, nil
}

func decodeYAML(data []byte, path string) (*Description, error) {
	var desc Description
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty document", path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &desc, nil
}
