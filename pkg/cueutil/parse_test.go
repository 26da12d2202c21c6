// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Doc: close({
	name:   string & !=""
	count?: int & >=0
	tags?: [...string]
})
`

type testDoc struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	data := []byte(`
name:  "demo"
count: 3
tags: ["a", "b"]
`)
	doc, err := Decode[testDoc](testSchema, "#Doc", data, WithFilename("demo.cue"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if doc.Name != "demo" || doc.Count != 3 || len(doc.Tags) != 2 {
		t.Errorf("decoded value = %+v", doc)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		opts     []Option
		contains string
	}{
		{"syntax error", `name: "demo`, nil, "demo.cue"},
		{"schema violation", `count: -1, name: "x"`, nil, "count"},
		{"unknown field", `name: "x", extra: 1`, nil, "extra"},
		{"missing required field", `count: 1`, nil, "name"},
		{"too large", `name: "demo"`, []Option{WithMaxFileSize(4)}, "exceeds maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := append([]Option{WithFilename("demo.cue")}, tt.opts...)
			_, err := Decode[testDoc](testSchema, "#Doc", []byte(tt.data), opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestDecodeMissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := Decode[testDoc](testSchema, "#Missing", []byte(`name: "x"`))
	if err == nil || !strings.Contains(err.Error(), "#Missing") {
		t.Errorf("expected missing definition error, got %v", err)
	}
	if errors.Is(err, ErrFileTooLarge) {
		t.Error("missing definition should not report file size")
	}
}

func TestValidateNonConcrete(t *testing.T) {
	t.Parallel()

	// Every field of #Opt is optional; an empty document only validates when
	// concreteness is not required.
	const schema = `#Opt: close({name?: string})`
	if _, err := Validate(schema, "#Opt", []byte(``), WithConcrete(false)); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	v, err := Validate(schema, "#Opt", []byte(`name: "x"`), WithConcrete(false))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	var m map[string]any
	if err := v.Decode(&m); err != nil || m["name"] != "x" {
		t.Errorf("Decode() = %v, %v", m, err)
	}
}

func TestDecodeDefaultFilename(t *testing.T) {
	t.Parallel()

	_, err := Decode[testDoc](testSchema, "#Doc", []byte(`count: -1, name: "x"`))
	if err == nil || !strings.HasPrefix(err.Error(), "<input>: ") {
		t.Errorf("expected <input> file name, got %v", err)
	}
}
