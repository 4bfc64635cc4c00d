// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package runconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mobile-e2e-config/internal/config"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

var testCreds = config.BrowserStack{Username: "u1", AccessKey: "k1", AppURL: "bs://app-hash"}

func TestNewRemote_Credentials(t *testing.T) {
	for name, cfg := range map[string]models.RunConfig{
		"android": NewAndroidRemote(DefaultBase(), testCreds),
		"ios":     NewIOSRemote(DefaultBase(), testCreds),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "u1", cfg.User)
			assert.Equal(t, "k1", cfg.Key)
		})
	}
}

// TestNewRemote_MissingCredentialsPassThrough verifies that empty credentials
// are not rejected locally.
func TestNewRemote_MissingCredentialsPassThrough(t *testing.T) {
	cfg := NewAndroidRemote(DefaultBase(), config.BrowserStack{})

	assert.Empty(t, cfg.User)
	assert.Empty(t, cfg.Key)
	require.Len(t, cfg.Capabilities, 1)
	assert.Empty(t, cfg.Capabilities[0].App)
}

func TestNewAndroidRemote_Descriptor(t *testing.T) {
	cfg := NewAndroidRemote(DefaultBase(), testCreds)

	require.Len(t, cfg.Capabilities, 1)
	c := cfg.Capabilities[0]
	assert.Equal(t, "Android", c.PlatformName)
	assert.Equal(t, "13.0", c.PlatformVersion)
	assert.Equal(t, "Google Pixel 7", c.DeviceName)
	assert.Equal(t, "UIAutomator2", c.AutomationName)
	assert.Equal(t, "bs://app-hash", c.App)
	assert.Equal(t, "com.aadhk.woinvoice", c.AppPackage)
	assert.Empty(t, c.BundleID)
}

func TestNewIOSRemote_Descriptor(t *testing.T) {
	cfg := NewIOSRemote(DefaultBase(), testCreds)

	require.Len(t, cfg.Capabilities, 1)
	c := cfg.Capabilities[0]
	assert.Equal(t, "iOS", c.PlatformName)
	assert.Equal(t, "16", c.PlatformVersion)
	assert.Equal(t, "iPhone 13", c.DeviceName)
	assert.Equal(t, "XCUITest", c.AutomationName)
	assert.Equal(t, "bs://app-hash", c.App)
	assert.Equal(t, "com.example.iosapp", c.BundleID)
	assert.Empty(t, c.AppPackage)
}

func TestNewRemote_ClearsConnectionTarget(t *testing.T) {
	cfg := NewIOSRemote(DefaultBase(), testCreds)

	assert.Empty(t, cfg.Hostname)
	assert.Zero(t, cfg.Port)
	assert.Empty(t, cfg.Path)
}

// TestNewRemote_ReplacesServices verifies that the base's services are
// discarded in favour of the single browserstack integration.
func TestNewRemote_ReplacesServices(t *testing.T) {
	base := DefaultBase()
	base.Services = []string{"appium", "visual", "shared-store"}

	cfg := NewAndroidRemote(base, testCreds)

	assert.Equal(t, []string{BrowserStackService}, cfg.Services)
}

func TestNewRemote_KeepsBaseFields(t *testing.T) {
	base := DefaultBase()
	base.Reporters = []models.Reporter{{Name: "spec"}, {Name: "junit", Options: map[string]any{"outputDir": "junit"}}}

	cfg := NewAndroidRemote(base, testCreds)

	assert.Equal(t, base.Reporters, cfg.Reporters)
	assert.Equal(t, base.Specs, cfg.Specs)
	assert.Equal(t, base.Framework, cfg.Framework)
	assert.Equal(t, base.Runner, cfg.Runner)
	assert.Equal(t, base.WaitforTimeout, cfg.WaitforTimeout)
}

// TestNewRemote_DoesNotAliasBase verifies that changing the result leaves the
// base untouched.
func TestNewRemote_DoesNotAliasBase(t *testing.T) {
	base := DefaultBase()
	base.Reporters = []models.Reporter{{Name: "allure", Options: map[string]any{"outputDir": "a"}}}

	cfg := NewIOSRemote(base, testCreds)
	cfg.Specs[0] = "changed"
	cfg.Reporters[0].Options["outputDir"] = "changed"

	assert.Equal(t, "./test/specs/**/*.ts", base.Specs[0])
	assert.Equal(t, "a", base.Reporters[0].Options["outputDir"])
	assert.Equal(t, "localhost", base.Hostname)
}

func TestNewRemote_IsDeterministic(t *testing.T) {
	assert.Equal(t, NewAndroidRemote(DefaultBase(), testCreds), NewAndroidRemote(DefaultBase(), testCreds))
	assert.Equal(t, NewIOSRemote(DefaultBase(), testCreds), NewIOSRemote(DefaultBase(), testCreds))
}

func TestNewRemote_CustomProfile(t *testing.T) {
	profile := models.PlatformProfile{
		PlatformName:    "Android",
		PlatformVersion: "14.0",
		DeviceName:      "Samsung Galaxy S24",
		AutomationName:  "UIAutomator2",
		AppIDField:      models.AppIDPackage,
		AppID:           "com.example.android",
	}

	cfg := NewRemote(DefaultBase(), profile, testCreds)

	assert.Equal(t, "Samsung Galaxy S24", cfg.Capabilities[0].DeviceName)
	assert.Equal(t, "com.example.android", cfg.Capabilities[0].AppPackage)
}
