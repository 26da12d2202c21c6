// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io/fs"

	"github.com/clidoc/clidoc/internal/issue"
	"github.com/clidoc/clidoc/internal/layout"
	"github.com/clidoc/clidoc/pkg/clidesc"
	"github.com/clidoc/clidoc/pkg/cueutil"
)

// loadPage parses, validates and lays out the description at path.
func loadPage(path string) (*layout.Page, error) {
	desc, err := clidesc.Parse(path)
	if err != nil {
		return nil, descriptionError(err, path)
	}
	page, err := layout.Build(desc)
	if err != nil {
		return nil, descriptionError(err, path)
	}
	return page, nil
}

// descriptionError classifies a parse failure into an actionable error and
// an exit code. Missing files and unsupported extensions are generic
// failures; everything else is an invalid description.
func descriptionError(err error, path string) error {
	var (
		id       issue.Id
		code     = ExitInvalidDescription
		suggests []string
	)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		id, code = issue.DescriptionNotFoundId, ExitFailure
		suggests = []string{"Check the path of the description file"}
	case errors.Is(err, clidesc.ErrUnsupportedFormat):
		id, code = issue.UnsupportedFormatId, ExitFailure
		suggests = []string{"Rename the file to .cue, .toml, .yaml or .yml"}
	case errors.Is(err, clidesc.ErrInvalidDescription):
		id = issue.DescriptionInvalidId
		suggests = []string{"Fix the fields listed above", "Run with --verbose for guidance on common mistakes"}
	case errors.Is(err, cueutil.ErrFileTooLarge):
		id = issue.DescriptionParseErrorId
		suggests = []string{"Split the description; documents are limited to 1 MiB"}
	default:
		id = issue.DescriptionParseErrorId
		suggests = []string{"Check the syntax at the reported position"}
	}

	return &ExitError{
		Code: code,
		Err:  issue.New(id, "load description").On(path).Suggest(suggests...).Wrap(err),
	}
}
