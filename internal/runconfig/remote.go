// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package runconfig

import (
	"github.com/MKhiriev/mobile-e2e-config/internal/config"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

// BrowserStackService is the only service integration of a remote run.
const BrowserStackService = "browserstack"

// Device profiles served by the remote producers.
var (
	AndroidPixel7 = models.PlatformProfile{
		PlatformName:    "Android",
		PlatformVersion: "13.0",
		DeviceName:      "Google Pixel 7",
		AutomationName:  "UIAutomator2",
		AppIDField:      models.AppIDPackage,
		AppID:           "com.aadhk.woinvoice",
	}

	IOSiPhone13 = models.PlatformProfile{
		PlatformName:    "iOS",
		PlatformVersion: "16",
		DeviceName:      "iPhone 13",
		AutomationName:  "XCUITest",
		AppIDField:      models.AppIDBundle,
		AppID:           "com.example.iosapp",
	}
)

// NewRemote derives a BrowserStack configuration for one device from base.
//
// Starting from a copy of base it keeps Runner and Reporters and:
//   - clears Hostname, Port and Path so the service resolves the endpoint;
//   - sets User and Key from bs, empty values included;
//   - replaces Services with the single browserstack integration;
//   - replaces Capabilities with the profile's descriptor using bs.AppURL.
//
// base is not modified.
func NewRemote(base models.RunConfig, profile models.PlatformProfile, bs config.BrowserStack) models.RunConfig {
	cfg := base.Clone()

	cfg.Hostname = ""
	cfg.Port = 0
	cfg.Path = ""

	cfg.User = bs.Username
	cfg.Key = bs.AccessKey

	cfg.Services = []string{BrowserStackService}
	cfg.Capabilities = []models.Capability{profile.Capability(bs.AppURL)}

	return cfg
}

// NewAndroidRemote is [NewRemote] with the [AndroidPixel7] profile.
func NewAndroidRemote(base models.RunConfig, bs config.BrowserStack) models.RunConfig {
	return NewRemote(base, AndroidPixel7, bs)
}

// NewIOSRemote is [NewRemote] with the [IOSiPhone13] profile.
func NewIOSRemote(base models.RunConfig, bs config.BrowserStack) models.RunConfig {
	return NewRemote(base, IOSiPhone13, bs)
}
