// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package runconfig

import (
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/mobile-e2e-config/internal/config"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

// Shared defaults of the local Appium setup.
const (
	appiumHost = "localhost"
	appiumPort = 4723
	appiumPath = "/"

	specsGlob   = "./test/specs/**/*.ts"
	excludeGlob = "./test/specs/e2e/**/*.ts"
)

// DefaultBase returns the base configuration the remote producers derive
// from: a local Appium run with mocha and the spec reporter.
func DefaultBase() models.RunConfig {
	return models.RunConfig{
		Runner:                 models.RunnerLocal,
		Hostname:               appiumHost,
		Port:                   appiumPort,
		Path:                   appiumPath,
		Specs:                  []string{specsGlob},
		Exclude:                []string{excludeGlob},
		MaxInstances:           1,
		LogLevel:               "info",
		Bail:                   0,
		WaitforTimeout:         models.Milliseconds(10 * time.Second),
		ConnectionRetryTimeout: models.Milliseconds(120 * time.Second),
		ConnectionRetryCount:   3,
		Services:               []string{"appium"},
		Framework:              "mocha",
		Reporters:              []models.Reporter{{Name: "spec"}},
		MochaOpts: models.MochaOpts{
			UI:      "bdd",
			Timeout: models.Milliseconds(60 * time.Second),
		},
	}
}

// ResolveBase returns [DefaultBase] with the file at path merged over it.
// Non-zero fields of the file win; an empty path returns the default as is.
func ResolveBase(path string) (models.RunConfig, error) {
	base := DefaultBase()
	if path == "" {
		return base, nil
	}

	overlay, err := config.LoadBaseFile(path)
	if err != nil {
		return models.RunConfig{}, err
	}

	if err = mergo.Merge(&base, overlay, mergo.WithOverride); err != nil {
		return models.RunConfig{}, fmt.Errorf("error merging base config: %w", err)
	}

	return base, nil
}
