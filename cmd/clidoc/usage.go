// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/clidoc/clidoc/internal/layout"

	"github.com/spf13/cobra"
)

func newUsageCommand(app *App, rootFlags *rootFlagValues) *cobra.Command {
	var plain bool

	usageCmd := &cobra.Command{
		Use:   "usage FILE",
		Short: "Print only the usage line of a description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.settings(cmd.Context(), rootFlags)

			page, err := loadPage(args[0])
			if err != nil {
				return err
			}

			color := !plain && colorEnabled(cfg.UI.ColorScheme, app.stdout)
			opts := layout.Options{Styles: pageStyles(cfg.UI.ColorScheme, color)}
			fmt.Fprintln(app.stdout, page.RenderUsage(opts))
			return nil
		},
	}

	usageCmd.Flags().BoolVar(&plain, "plain", false, "disable colors")

	return usageCmd
}
