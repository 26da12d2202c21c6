// SPDX-License-Identifier: MPL-2.0

// Package config handles clidoc configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/clidoc/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/clidoc/config.cue on macOS, %APPDATA%\clidoc\config.cue
// on Windows). Settings cover terminal colors, verbosity and the default help page
// rendering options. Every key can be overridden from the environment with the
// CLIDOC_ prefix, e.g. CLIDOC_RENDER_SORT_ITEMS=true.
//
// Configuration files are validated against a CUE schema (config_schema.cue) so that
// typos and out-of-range values are reported with file positions.
package config
