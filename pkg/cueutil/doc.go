// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Description documents and the application config file are both validated
// against an embedded schema before decoding:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema definition
//  3. Validate and decode to a Go struct
//
// # Usage
//
//	//go:embed clidesc_schema.cue
//	var schema string
//
//	desc, err := cueutil.Decode[Description](schema, "#Description", data,
//	    cueutil.WithFilename("tar.cue"))
//	if err != nil {
//	    return nil, err // a *FileError naming the offending field
//	}
//
// Validate stops before decoding, for callers that decode into a map.
package cueutil
