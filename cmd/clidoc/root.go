// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/clidoc/clidoc/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlagValues{}

	rootCmd := &cobra.Command{
		Use:   "clidoc",
		Short: "Render aligned help pages from CLI descriptions",
		Long: TitleStyle.Render("clidoc") + SubtitleStyle.Render(" - render aligned help pages from CLI descriptions") + `

clidoc reads a description of a program's flags, arguments, positional
items and commands from a CUE, TOML or YAML file and prints the help
page that program would show: a usage line, column-aligned sections,
environment variable annotations and examples.

` + SubtitleStyle.Render("Examples:") + `
  clidoc render tar.cue            Print the help page
  clidoc render --watch tar.cue    Re-render on every save
  clidoc usage tar.toml            Print only the usage line
  clidoc check *.yaml              Validate descriptions
  clidoc config show               Show the effective configuration`,
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging and detailed errors")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/clidoc/config.cue)")

	rootCmd.AddCommand(newRenderCommand(app, flags))
	rootCmd.AddCommand(newUsageCommand(app, flags))
	rootCmd.AddCommand(newCheckCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the code carried by an ExitError.
// It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
			printError(w, err, verbose)
		}),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}

// printError writes err with its suggestions. In verbose mode the catalog
// guidance linked to an ActionableError is rendered below it.
func printError(w io.Writer, err error, verbose bool) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	var ae *issue.ActionableError
	if !verbose || !errors.As(err, &ae) {
		return
	}
	if iss := ae.Guidance(); iss != nil {
		style := "notty"
		if isTerminal(w) {
			style = "auto"
		}
		if rendered, renderErr := iss.Render(style); renderErr == nil {
			fmt.Fprint(w, rendered)
		}
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors include their suggestions, and in verbose mode the full
// error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
