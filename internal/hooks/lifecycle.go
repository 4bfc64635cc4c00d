// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hooks implements the lifecycle callbacks attached to the CI
// emulator run configuration: status lines before and after the run and a
// screenshot of the device whenever a test fails.
package hooks

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/mobile-e2e-config/internal/logger"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

// DefaultAPILevel is reported by OnPrepare when no platform version is known.
const DefaultAPILevel = "29"

// timestampLayout matches an ISO-8601 UTC timestamp with milliseconds.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Lifecycle holds what the hooks need at invocation time. The driver session
// is not part of it: the runner passes the session to AfterTest explicitly.
type Lifecycle struct {
	logger        *logger.Logger
	apiLevel      string
	screenshotDir string
	now           func() time.Time
}

// NewLifecycle constructs a [Lifecycle]. platformVersion may be empty, in
// which case [DefaultAPILevel] is reported.
func NewLifecycle(log *logger.Logger, platformVersion, screenshotDir string) *Lifecycle {
	if log == nil {
		log = logger.Nop()
	}
	if platformVersion == "" {
		platformVersion = DefaultAPILevel
	}

	return &Lifecycle{
		logger:        log,
		apiLevel:      platformVersion,
		screenshotDir: screenshotDir,
		now:           time.Now,
	}
}

// OnPrepare logs which platform and target the run is about to use.
func (l *Lifecycle) OnPrepare() {
	l.logger.Info().Msg("Starting CI test execution on Android Emulator...")
	l.logger.Info().Str("platform", "Android").Msg("Platform: Android")
	l.logger.Info().Str("target", "Emulator").Msg("Target: Emulator")
	l.logger.Info().Str("api_level", l.apiLevel).Msg("API Level: " + l.apiLevel)
}

// OnComplete logs the end of the run.
func (l *Lifecycle) OnComplete() {
	l.logger.Info().Msg("CI test execution completed")
}

// AfterTest captures a screenshot through session when result did not pass.
// Passing tests are ignored. A failed capture, or a missing session, is logged
// and never returned: the hook cannot fail the run.
func (l *Lifecycle) AfterTest(ctx context.Context, session models.Session, result models.TestResult) {
	if result.Passed {
		return
	}

	path := l.ScreenshotPath(result)

	if session == nil {
		l.logger.Warn().Str("path", path).Msg("Failed to take screenshot: no active session")
		return
	}

	if err := session.SaveScreenshot(ctx, path); err != nil {
		l.logger.Warn().Err(err).Str("path", path).Msg("Failed to take screenshot")
		return
	}

	l.logger.Info().Str("path", path).Msg("Screenshot saved: " + path)
}

// ScreenshotPath returns <dir>/<suite>-<title>-<timestamp>.png for result,
// where the timestamp is the current UTC time with ':' and '.' replaced by '-'.
func (l *Lifecycle) ScreenshotPath(result models.TestResult) string {
	name := result.Parent + "-" + result.Title + "-" + sanitizeTimestamp(l.now()) + ".png"
	if l.screenshotDir == "" {
		return name
	}
	return strings.TrimRight(l.screenshotDir, "/") + "/" + name
}

func sanitizeTimestamp(t time.Time) string {
	return timestampReplacer.Replace(t.UTC().Format(timestampLayout))
}

var timestampReplacer = strings.NewReplacer(":", "-", ".", "-")

// Bind exposes the lifecycle as the hook slots of a run configuration.
func (l *Lifecycle) Bind() models.Hooks {
	return models.Hooks{
		OnPrepare:  l.OnPrepare,
		OnComplete: l.OnComplete,
		AfterTest:  l.AfterTest,
	}
}
