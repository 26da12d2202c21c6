// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/clidoc/clidoc/internal/config"
	"github.com/clidoc/clidoc/internal/issue"

	"github.com/spf13/cobra"
)

func newConfigCommand(app *App, rootFlags *rootFlagValues) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage clidoc configuration",
		Long: `Manage clidoc configuration.

Configuration is read from a CUE file, by default
$XDG_CONFIG_HOME/clidoc/config.cue, then ./config.cue. Every key can be
overridden from the environment as CLIDOC_<SECTION>_<KEY>, for example
CLIDOC_UI_COLOR_SCHEME=none.`,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration as CUE",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: rootFlags.configPath})
				if err != nil {
					return err
				}
				fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file that would be loaded",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				path, err := app.Config.Path(config.LoadOptions{ConfigFilePath: rootFlags.configPath})
				if err != nil {
					return err
				}
				if path == "" {
					fmt.Fprintln(app.stdout, SubtitleStyle.Render("(no config file, using defaults)"))
					return nil
				}
				fmt.Fprintln(app.stdout, path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a default config file",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				path, created, err := config.CreateDefaultConfig()
				if err != nil {
					return issue.New(issue.ConfigLoadFailedId, "create config file").
						Suggest("Check that the config directory is writable").
						Wrap(err)
				}
				if !created {
					fmt.Fprintf(app.stdout, "Config file already exists: %s\n", CmdStyle.Render(path))
					return nil
				}
				fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created"), CmdStyle.Render(path))
				return nil
			},
		},
	)

	return configCmd
}
