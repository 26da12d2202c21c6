// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(app *App, rootFlags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate descriptions without rendering them",
		Long: `Validate descriptions without rendering them.

Every file is parsed and checked: item names, option flags, duplicate
flags and example commands. One line is printed per file. The command
exits with status 2 when any file is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.settings(cmd.Context(), rootFlags)

			failed := 0
			for _, path := range args {
				if _, err := loadPage(path); err != nil {
					failed++
					fmt.Fprintf(app.stdout, "%s %s\n", ErrorStyle.Render("✗"), CmdStyle.Render(path))
					fmt.Fprintf(app.stdout, "  %s\n", formatErrorForDisplay(err, rootFlags.verbose))
					continue
				}
				fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(path))
				app.logger.Debug("description is valid", "file", path)
			}

			if failed > 0 {
				return &ExitError{
					Code: ExitInvalidDescription,
					Err:  fmt.Errorf("%d of %d description(s) failed validation", failed, len(args)),
				}
			}
			return nil
		},
	}
}
