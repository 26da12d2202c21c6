// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/clidoc/clidoc/internal/config"
	"github.com/clidoc/clidoc/internal/issue"
	"github.com/clidoc/clidoc/internal/layout"
	"github.com/clidoc/clidoc/internal/watch"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// renderFlagValues holds the flags of the render command.
type renderFlagValues struct {
	noEnv     bool
	sort      bool
	plain     bool
	watch     bool
	watchGlob []string
}

func newRenderCommand(app *App, rootFlags *rootFlagValues) *cobra.Command {
	flags := &renderFlagValues{}

	renderCmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render the help page of a description",
		Long: `Render the help page of a description.

The page starts with the usage line, then the about text, one section per
kind of item (positional items, options, commands), the examples and the
footer. Every section is aligned on its own widest item.

Arguments bound to an environment variable show its current value, or N/A
when it is unset. Use --no-env for output that does not depend on the
environment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := app.settings(ctx, rootFlags)
			opts := app.renderOptions(cfg, flags, cmd.Flags().Changed("sort"))

			if flags.watch {
				return app.watchAndRender(ctx, args[0], opts, flags.watchGlob)
			}

			out, err := renderFile(args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, out)
			return nil
		},
	}

	renderCmd.Flags().BoolVar(&flags.noEnv, "no-env", false, "omit environment variable annotations")
	renderCmd.Flags().BoolVar(&flags.sort, "sort", false, "sort every section instead of keeping declaration order")
	renderCmd.Flags().BoolVar(&flags.plain, "plain", false, "disable colors and markdown rendering")
	renderCmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-render whenever the description changes")
	renderCmd.Flags().StringSliceVar(&flags.watchGlob, "watch-glob", nil, "extra glob, relative to the description's directory, that triggers a re-render")

	return renderCmd
}

// renderOptions merges configuration and flags. Flags only ever switch
// features off, except --sort which overrides render.sort_items when given.
func (a *App) renderOptions(cfg *config.Config, flags *renderFlagValues, sortChanged bool) layout.Options {
	color := !flags.plain && colorEnabled(cfg.UI.ColorScheme, a.stdout)

	opts := layout.Options{
		NoEnv:  flags.noEnv || !cfg.Render.EnvAnnotations,
		Sort:   cfg.Render.SortItems,
		Styles: pageStyles(cfg.UI.ColorScheme, color),
	}
	if sortChanged {
		opts.Sort = flags.sort
	}
	if cfg.Render.Markdown && !flags.plain {
		opts.Markdown = glamourRenderer(markdownStyle(cfg, color), terminalWidth(a.stdout))
	}
	return opts
}

// glamourRenderer renders about and footer text. Trailing padding that
// glamour adds to every line is removed.
func glamourRenderer(style string, width int) layout.MarkdownRenderer {
	return func(md string) (string, error) {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		lines := strings.Split(out, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, " ")
		}
		return strings.Join(lines, "\n"), nil
	}
}

// renderFile renders the help page of the description at path.
func renderFile(path string, opts layout.Options) (string, error) {
	page, err := loadPage(path)
	if err != nil {
		return "", err
	}
	out, err := page.Render(opts)
	if err != nil {
		return "", issue.Wrap(err, "render help page", path)
	}
	return out, nil
}

// watchAndRender renders path once, then again after every change until ctx
// is cancelled. Render failures are logged and do not stop the watch.
func (a *App) watchAndRender(ctx context.Context, path string, opts layout.Options, globs []string) error {
	render := func() error {
		out, err := renderFile(path, opts)
		if err != nil {
			return err
		}
		fmt.Fprint(a.stdout, out)
		return nil
	}

	if err := render(); err != nil {
		a.logger.Error(formatErrorForDisplay(err, false))
	}

	watchFailed := issue.New(issue.WatchFailedId, "watch description").On(path)
	w, err := watch.New(watch.Config{
		BaseDir:     filepath.Dir(path),
		Patterns:    append([]string{watch.PatternFor(filepath.Base(path))}, globs...),
		ClearScreen: isTerminal(a.stdout),
		Stdout:      a.stdout,
		Logger:      a.logger,
		OnChange: func(_ context.Context, changed []string) error {
			a.logger.Debug("re-rendering", "changed", changed)
			return render()
		},
	})
	if err != nil {
		return watchFailed.Wrap(err)
	}

	a.logger.Info("watching for changes, press Ctrl+C to stop", "file", path)
	if err := w.Run(ctx); err != nil {
		return watchFailed.Wrap(err)
	}
	return nil
}
