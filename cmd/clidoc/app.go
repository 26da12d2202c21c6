// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/clidoc/clidoc/internal/config"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. All command handlers
	// receive an App and write through its writers.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer
		logger *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Path(opts config.LoadOptions) (string, error)
	}

	// rootFlagValues holds the persistent flags shared by every command.
	rootFlagValues struct {
		configPath string
		verbose    bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		logger: log.NewWithOptions(deps.Stderr, log.Options{Prefix: "clidoc"}),
	}
}

// settings loads the configuration for one invocation. A broken config file
// is reported as a warning and the defaults are used, so help pages can still
// be rendered. The verbose flag, or ui.verbose, switches the logger to debug.
func (a *App) settings(ctx context.Context, flags *rootFlagValues) *config.Config {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		a.logger.Warn(formatErrorForDisplay(err, flags.verbose))
		cfg = config.DefaultConfig()
	}

	if flags.verbose || cfg.UI.Verbose {
		flags.verbose = true
		a.logger.SetLevel(log.DebugLevel)
	}
	return cfg
}
