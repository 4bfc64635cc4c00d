// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Capability describes the target device, platform and automation engine
// requested from the driver or device-farm service.
//
// String fields are omitted from the rendered descriptor when empty, so an
// unknown platform version produces no "appium:platformVersion" key at all.
// Provider flags are pointers: nil means the flag is not sent, while a
// pointer to false is rendered explicitly.
type Capability struct {
	PlatformName    string `json:"platformName" yaml:"platformName"`
	PlatformVersion string `json:"appium:platformVersion,omitempty" yaml:"appium:platformVersion,omitempty"`
	DeviceName      string `json:"appium:deviceName,omitempty" yaml:"appium:deviceName,omitempty"`
	UDID            string `json:"appium:udid,omitempty" yaml:"appium:udid,omitempty"`
	App             string `json:"appium:app,omitempty" yaml:"appium:app,omitempty"`
	AutomationName  string `json:"appium:automationName,omitempty" yaml:"appium:automationName,omitempty"`
	AppPackage      string `json:"appium:appPackage,omitempty" yaml:"appium:appPackage,omitempty"`
	BundleID        string `json:"appium:bundleId,omitempty" yaml:"appium:bundleId,omitempty"`

	AutoGrantPermissions   *bool `json:"appium:autoGrantPermissions,omitempty" yaml:"appium:autoGrantPermissions,omitempty"`
	FullReset              *bool `json:"appium:fullReset,omitempty" yaml:"appium:fullReset,omitempty"`
	NoReset                *bool `json:"appium:noReset,omitempty" yaml:"appium:noReset,omitempty"`
	ShouldTerminateApp     *bool `json:"appium:shouldTerminateApp,omitempty" yaml:"appium:shouldTerminateApp,omitempty"`
	AutoAcceptAlerts       *bool `json:"appium:autoAcceptAlerts,omitempty" yaml:"appium:autoAcceptAlerts,omitempty"`
	AutoDismissAlerts      *bool `json:"appium:autoDismissAlerts,omitempty" yaml:"appium:autoDismissAlerts,omitempty"`
	DisableWindowAnimation *bool `json:"appium:disableWindowAnimation,omitempty" yaml:"appium:disableWindowAnimation,omitempty"`
	UnicodeKeyboard        *bool `json:"appium:unicodeKeyboard,omitempty" yaml:"appium:unicodeKeyboard,omitempty"`
	ResetKeyboard          *bool `json:"appium:resetKeyboard,omitempty" yaml:"appium:resetKeyboard,omitempty"`

	// NewCommandTimeout is expressed in seconds, as Appium expects.
	NewCommandTimeout     *int `json:"appium:newCommandTimeout,omitempty" yaml:"appium:newCommandTimeout,omitempty"`
	WaitForIdleTimeout    *int `json:"appium:waitForIdleTimeout,omitempty" yaml:"appium:waitForIdleTimeout,omitempty"`
	AndroidInstallTimeout *int `json:"appium:androidInstallTimeout,omitempty" yaml:"appium:androidInstallTimeout,omitempty"`
}

// Clone returns a deep copy of c.
func (c Capability) Clone() Capability {
	out := c
	for _, p := range []**bool{
		&out.AutoGrantPermissions, &out.FullReset, &out.NoReset,
		&out.ShouldTerminateApp, &out.AutoAcceptAlerts, &out.AutoDismissAlerts,
		&out.DisableWindowAnimation, &out.UnicodeKeyboard, &out.ResetKeyboard,
	} {
		if *p != nil {
			*p = Bool(**p)
		}
	}
	for _, p := range []**int{&out.NewCommandTimeout, &out.WaitForIdleTimeout, &out.AndroidInstallTimeout} {
		if *p != nil {
			*p = Int(**p)
		}
	}
	return out
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
