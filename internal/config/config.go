// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Target selects which run configuration is produced.
type Target string

const (
	// TargetEmulatorCI is the standalone local Android emulator config used in CI.
	TargetEmulatorCI Target = "emulator-ci"
	// TargetAndroid routes the run to a BrowserStack Android device.
	TargetAndroid Target = "android"
	// TargetIOS routes the run to a BrowserStack iOS device.
	TargetIOS Target = "ios"
)

// Format selects how a run configuration is rendered.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Fallback values applied after all sources have been merged.
const (
	// DefaultEmulatorID is used for both the Android device name and UDID
	// when the environment does not name a device.
	DefaultEmulatorID   = "emulator-5554"
	DefaultDotEnvPath   = ".env"
	DefaultScreenshots  = "./screenshots"
	DefaultWebDriverURL = "http://localhost:4723"
	DefaultWDTimeout    = 30 * time.Second
)

// Settings is the typed view of everything the producers read from the
// process environment. It is populated by merging a .env file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Settings struct {
	// Target selects the producer.
	// Env: E2E_TARGET
	Target Target `env:"E2E_TARGET"`

	// Format selects the rendering of the produced config.
	// Env: E2E_FORMAT
	Format Format `env:"E2E_FORMAT"`

	// BaseConfigPath is an optional JSON or YAML file overlaid on the
	// built-in default base config used by the remote producers.
	// Env: E2E_BASE_CONFIG
	BaseConfigPath string `env:"E2E_BASE_CONFIG"`

	// DotEnvPath is the .env file loaded before the environment is read.
	// Variables already present in the environment are never overridden.
	// Env: E2E_DOTENV
	DotEnvPath string `env:"E2E_DOTENV"`

	// ScreenshotDir is where the after-test hook stores failure screenshots.
	// Env: E2E_SCREENSHOT_DIR
	ScreenshotDir string `env:"E2E_SCREENSHOT_DIR"`

	BrowserStack BrowserStack
	Android      Android   `envPrefix:"ANDROID_"`
	WebDriver    WebDriver `envPrefix:"WEBDRIVER_"`
}

// BrowserStack holds device-farm credentials and the uploaded app reference.
// Empty values are passed through; the service rejects the session itself.
type BrowserStack struct {
	// Env: BROWSERSTACK_USERNAME
	Username string `env:"BROWSERSTACK_USERNAME"`
	// Env: BROWSERSTACK_ACCESS_KEY
	AccessKey string `env:"BROWSERSTACK_ACCESS_KEY"`
	// AppURL is the bs:// reference returned by the app upload API.
	// Env: BS_APP_URL
	AppURL string `env:"BS_APP_URL"`
}

// Android describes the local emulator targeted by the CI config.
type Android struct {
	// Env: ANDROID_DEVICE_NAME
	DeviceName string `env:"DEVICE_NAME"`

	// PlatformVersion has no fallback: when empty the capability carries no
	// platform version at all.
	// Env: ANDROID_PLATFORM_VERSION
	PlatformVersion string `env:"PLATFORM_VERSION"`

	// Env: ANDROID_UDID
	UDID string `env:"UDID"`
}

// WebDriver points the after-test hook at the running driver session.
type WebDriver struct {
	// URL is the base URL of the Appium or hub endpoint.
	// Env: WEBDRIVER_URL
	URL string `env:"URL"`

	// SessionID is the id of the active session, as reported by the runner.
	// Env: WEBDRIVER_SESSION_ID
	SessionID string `env:"SESSION_ID"`

	// RequestTimeout bounds a single screenshot request (e.g. "30s").
	// Env: WEBDRIVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}
