// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package runconfig

import (
	"time"

	"github.com/MKhiriev/mobile-e2e-config/internal/config"
	"github.com/MKhiriev/mobile-e2e-config/internal/hooks"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

// EmulatorApp is the application package installed on the CI emulator.
const EmulatorApp = "app/InvoiceSimple.apk"

// NewEmulatorCI returns the standalone configuration for a local Android
// emulator in CI. It runs one session at a time with a full reset before
// each, so results do not depend on leftover device state.
//
// Device name and UDID come from android, which is expected to carry the
// emulator fallbacks already. The platform version capability is set only
// when android names one. Hooks are bound to lc when it is non-nil.
func NewEmulatorCI(android config.Android, lc *hooks.Lifecycle) models.RunConfig {
	cfg := models.RunConfig{
		Runner:       models.RunnerLocal,
		Port:         appiumPort,
		Specs:        []string{specsGlob},
		Exclude:      []string{excludeGlob},
		MaxInstances: 1,
		Capabilities: []models.Capability{emulatorCapability(android)},

		LogLevel: "info",
		Bail:     0,

		WaitforTimeout:         models.Milliseconds(15 * time.Second),
		ConnectionRetryTimeout: models.Milliseconds(180 * time.Second),
		ConnectionRetryCount:   3,

		Services:  []string{"appium", "visual"},
		Framework: "mocha",
		Reporters: []models.Reporter{
			{Name: "spec"},
			{Name: "allure", Options: map[string]any{
				"outputDir":                            "allure-results",
				"disableWebdriverStepsReporting":       false,
				"disableWebdriverScreenshotsReporting": false,
			}},
		},
		MochaOpts: models.MochaOpts{
			UI:      "bdd",
			Timeout: models.Milliseconds(15 * time.Minute),
		},
	}

	if lc != nil {
		cfg.Hooks = lc.Bind()
	}

	return cfg
}

func emulatorCapability(android config.Android) models.Capability {
	return models.Capability{
		PlatformName:    "android",
		DeviceName:      android.DeviceName,
		PlatformVersion: android.PlatformVersion,
		AutomationName:  "UiAutomator2",
		UDID:            android.UDID,
		App:             EmulatorApp,

		AutoGrantPermissions:   models.Bool(true),
		FullReset:              models.Bool(true),
		NoReset:                models.Bool(false),
		ShouldTerminateApp:     models.Bool(true),
		AutoAcceptAlerts:       models.Bool(true),
		AutoDismissAlerts:      models.Bool(true),
		DisableWindowAnimation: models.Bool(true),

		NewCommandTimeout:     models.Int(300),
		WaitForIdleTimeout:    models.Int(5000),
		AndroidInstallTimeout: models.Int(90000),

		UnicodeKeyboard: models.Bool(true),
		ResetKeyboard:   models.Bool(true),
	}
}
