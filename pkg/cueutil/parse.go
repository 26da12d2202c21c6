// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Validate unifies data with the definition (e.g. "#Description") of the
// schema source and validates the result. Each call compiles in a fresh CUE
// context, so Validate is safe for concurrent use.
//
// Document errors are *FileError values naming the offending field. A schema
// that fails to compile or lacks the definition is reported as an internal
// error.
func Validate(schema, definition string, data []byte, opts ...Option) (cue.Value, error) {
	o := newOptions(opts)
	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return cue.Value{}, err
	}

	ctx := cuecontext.New()
	def := ctx.CompileString(schema).LookupPath(cue.ParsePath(definition))
	if err := def.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s: %w", definition, err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(o.filename))
	if err := doc.Err(); err != nil {
		return cue.Value{}, FormatError(err, o.filename)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return cue.Value{}, FormatError(err, o.filename)
	}
	return unified, nil
}

// Decode validates data like Validate and decodes the result into a T.
func Decode[T any](schema, definition string, data []byte, opts ...Option) (*T, error) {
	v, err := Validate(schema, definition, data, opts...)
	if err != nil {
		return nil, err
	}

	var out T
	if err := v.Decode(&out); err != nil {
		return nil, FormatError(err, newOptions(opts).filename)
	}
	return &out, nil
}
