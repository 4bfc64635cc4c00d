// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppIDField names the capability that identifies the application under test
// on a device.
type AppIDField string

const (
	// AppIDPackage is the Android application package ("appium:appPackage").
	AppIDPackage AppIDField = "appPackage"
	// AppIDBundle is the iOS bundle identifier ("appium:bundleId").
	AppIDBundle AppIDField = "bundleId"
)

// PlatformProfile is the fixed part of a remote device descriptor: everything
// except the application reference, which comes from the environment.
type PlatformProfile struct {
	PlatformName    string
	PlatformVersion string
	DeviceName      string
	AutomationName  string
	AppIDField      AppIDField
	AppID           string
}

// Capability builds the device descriptor for the profile with app as the
// application reference. Only the identifier field named by AppIDField is
// set.
func (p PlatformProfile) Capability(app string) Capability {
	c := Capability{
		PlatformName:    p.PlatformName,
		PlatformVersion: p.PlatformVersion,
		DeviceName:      p.DeviceName,
		App:             app,
		AutomationName:  p.AutomationName,
	}

	switch p.AppIDField {
	case AppIDPackage:
		c.AppPackage = p.AppID
	case AppIDBundle:
		c.BundleID = p.AppID
	}

	return c
}
