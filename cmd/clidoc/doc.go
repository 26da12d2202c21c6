// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for clidoc.
//
// This package implements the Cobra command hierarchy: render, usage and
// check operate on description files; config manages the settings file.
// Commands receive an App carrying the output writers, the logger and the
// configuration provider so they can be exercised without a terminal.
package cmd
