// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is returned when a document exceeds the size limit.
var ErrFileTooLarge = errors.New("file too large")

// FileError is a CUE failure located in a document. Problems holds one
// "<path>: <message>" entry per CUE error; Err is the error CUE returned.
type FileError struct {
	File     string
	Problems []string
	Err      error
}

// Error renders a single problem inline and several as an indented list.
func (e *FileError) Error() string {
	if len(e.Problems) == 1 {
		return e.File + ": " + e.Problems[0]
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.File, strings.Join(e.Problems, "\n  "))
}

func (e *FileError) Unwrap() error { return e.Err }

// FormatError locates err in filePath. CUE errors become a *FileError with
// array indices rendered in brackets, e.g.
// "tar.cue: entries[2].short[0]: invalid value". Other errors are wrapped
// with the file path.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	var ce cueerrors.Error
	if !errors.As(err, &ce) {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	fe := &FileError{File: filePath, Err: err}
	for _, e := range cueerrors.Errors(err) {
		pathStr := formatPath(cueerrors.Path(e))
		msg := e.Error()

		// CUE sometimes repeats the path inside the message.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}
		if pathStr != "" {
			msg = pathStr + ": " + msg
		}
		fe.Problems = append(fe.Problems, msg)
	}
	return fe
}

// formatPath converts ["entries", "0", "short"] into "entries[0].short".
func formatPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			sb.WriteString("[" + part + "]")
		case i > 0:
			sb.WriteString("." + part)
		default:
			sb.WriteString(part)
		}
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns an error wrapping ErrFileTooLarge when data is larger
// than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: size %d bytes exceeds maximum %d bytes: %w",
			filename, len(data), maxSize, ErrFileTooLarge)
	}
	return nil
}
