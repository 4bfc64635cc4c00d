// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/mobile-e2e-config/models"
)

// LoadBaseFile reads a base run configuration from a JSON (.json) or YAML
// (.yaml, .yml) file. Fields the file does not mention stay zero so the
// result can be merged over the built-in base config.
//
// Timeouts may be given as milliseconds or as duration strings ("15s").
func LoadBaseFile(path string) (*models.RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading base config file: %w", err)
	}

	var cfg models.RunConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err = json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error decoding json base config: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml base config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBaseFormat, ext)
	}

	return &cfg, nil
}
