// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli wires the e2econf command tree: rendering the selected run
// configuration and running its lifecycle hooks on behalf of the test runner.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/mobile-e2e-config/internal/config"
	"github.com/MKhiriev/mobile-e2e-config/internal/hooks"
	"github.com/MKhiriev/mobile-e2e-config/internal/logger"
	"github.com/MKhiriev/mobile-e2e-config/internal/runconfig"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

// app is shared by all subcommands of one invocation.
type app struct {
	flags  *config.Settings
	out    io.Writer
	errOut io.Writer
	build  models.AppBuildInfo
}

// NewRootCmd builds the e2econf command tree. Rendered configs go to out,
// status and log lines to errOut.
func NewRootCmd(out, errOut io.Writer, build models.AppBuildInfo) *cobra.Command {
	a := &app{out: out, errOut: errOut, build: build}

	root := &cobra.Command{
		Use:   "e2econf",
		Short: "Run configurations for mobile end-to-end tests",
		Long: `e2econf produces the run configuration for a mobile end-to-end test run:
a local Android emulator in CI, or a BrowserStack Android or iOS device.

Settings come from a .env file, the environment and flags, in increasing
priority. The lifecycle hooks of the selected configuration can be run as
subcommands.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.newRenderCmd(),
		a.newPrepareCmd(),
		a.newCompleteCmd(),
		a.newAfterTestCmd(),
		a.newVersionCmd(),
	)

	return root
}

// load resolves settings and builds the selected run configuration with its
// hooks reporting to a console logger.
func (a *app) load(role string) (*config.Settings, models.RunConfig, *logger.Logger, error) {
	settings, err := config.Load(a.flags)
	if err != nil {
		return nil, models.RunConfig{}, nil, err
	}

	log := logger.NewConsoleLogger(role, a.errOut)
	lc := hooks.NewLifecycle(log, settings.Android.PlatformVersion, settings.ScreenshotDir)

	cfg, err := runconfig.Build(settings, lc)
	if err != nil {
		return nil, models.RunConfig{}, nil, err
	}

	return settings, cfg, log, nil
}
