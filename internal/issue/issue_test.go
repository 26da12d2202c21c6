// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestValues(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i, v := range values {
		if want := Id(i + 1); v.Id() != want {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, v.Id(), want)
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id    Id
		title string
	}{
		{DescriptionNotFoundId, "# Description file not found!"},
		{DescriptionParseErrorId, "# Failed to parse the description!"},
		{DescriptionInvalidId, "# The description is invalid!"},
		{UnsupportedFormatId, "# Unsupported description format!"},
		{ConfigLoadFailedId, "# Failed to load the configuration!"},
		{WatchFailedId, "# Failed to watch the description!"},
	}

	for _, tt := range tests {
		got := Get(tt.id)
		if got == nil {
			t.Errorf("Get(%d) = nil", tt.id)
			continue
		}
		if !strings.Contains(string(got.MarkdownMsg()), tt.title) {
			t.Errorf("Get(%d) markdown does not contain %q", tt.id, tt.title)
		}
	}

	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	for _, iss := range Values() {
		out, err := iss.Render("ascii")
		if err != nil {
			t.Errorf("Render(%d) error = %v", iss.Id(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("Render(%d) produced empty output", iss.Id())
		}
	}

	if _, err := Get(DescriptionInvalidId).Render("no-such-style"); err == nil {
		t.Error("Render() with an unknown style should fail")
	}
}
