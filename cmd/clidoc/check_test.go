// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/clidoc/clidoc/internal/testutil"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := testutil.MustWriteFile(t, dir, "tar.toml", tarTOML)
	goodYAML := testutil.MustWriteFile(t, dir, "cp.yaml", "program: cp\nentries:\n  - kind: flag\n    short: [r]\n    help: Copy directories\n")
	dup := testutil.MustWriteFile(t, dir, "dup.yaml", "program: cp\nentries:\n  - kind: flag\n    short: [h]\n")

	t.Run("all valid", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runCLI(t, &stubConfigProvider{cfg: plainConfig()}, "check", good, goodYAML)
		if err != nil {
			t.Fatalf("check error = %v", err)
		}
		for _, p := range []string{good, goodYAML} {
			if !strings.Contains(stdout, "✓ "+p) {
				t.Errorf("missing ok line for %s:\n%s", p, stdout)
			}
		}
	})

	t.Run("one invalid", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runCLI(t, &stubConfigProvider{cfg: plainConfig()}, "check", good, dup)
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != ExitInvalidDescription {
			t.Fatalf("expected exit code %d, got %v", ExitInvalidDescription, err)
		}
		if !strings.Contains(err.Error(), "1 of 2") {
			t.Errorf("error = %q, want failure count", err.Error())
		}
		if !strings.Contains(stdout, "✓ "+good) {
			t.Errorf("missing ok line:\n%s", stdout)
		}
		if !strings.Contains(stdout, "✗ "+dup) {
			t.Errorf("missing failure line:\n%s", stdout)
		}
		if !strings.Contains(stdout, "help flag") {
			t.Errorf("failure should explain the clash with the help flag:\n%s", stdout)
		}
	})

	t.Run("no arguments", func(t *testing.T) {
		t.Parallel()

		if _, _, err := runCLI(t, &stubConfigProvider{}, "check"); err == nil {
			t.Error("expected an argument error")
		}
	})
}
