package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type settingsBuilder struct {
	configs []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		configs: make([]*Settings, 0, 2),
	}
}

// build merges the collected sources in order, each overriding the non-zero
// fields of the ones before it, then applies fallbacks and validates.
func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, cfg := range b.configs {
		if err := mergo.Merge(settings, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	settings.applyFallbacks()

	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// withDotEnv loads the .env file named by flags, E2E_DOTENV or the default
// path, in that order. It must run before withEnv.
func (b *settingsBuilder) withDotEnv(flagPath string) *settingsBuilder {
	path := flagPath
	if path == "" {
		path = os.Getenv("E2E_DOTENV")
	}
	if path == "" {
		path = DefaultDotEnvPath
	}

	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *settingsBuilder) withFlags(flagCfg *Settings) *settingsBuilder {
	if flagCfg == nil {
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// applyFallbacks is the single place where missing values are defaulted.
// Android.PlatformVersion is deliberately left alone.
func (s *Settings) applyFallbacks() {
	if s.Target == "" {
		s.Target = TargetEmulatorCI
	}
	if s.Format == "" {
		s.Format = FormatJSON
	}
	if s.DotEnvPath == "" {
		s.DotEnvPath = DefaultDotEnvPath
	}
	if s.ScreenshotDir == "" {
		s.ScreenshotDir = DefaultScreenshots
	}
	if s.Android.DeviceName == "" {
		s.Android.DeviceName = DefaultEmulatorID
	}
	if s.Android.UDID == "" {
		s.Android.UDID = DefaultEmulatorID
	}
	if s.WebDriver.URL == "" {
		s.WebDriver.URL = DefaultWebDriverURL
	}
	if s.WebDriver.RequestTimeout == 0 {
		s.WebDriver.RequestTimeout = DefaultWDTimeout
	}
}

// Load assembles [Settings] from the .env file, the environment and flagCfg
// (usually obtained from [BindFlags]). Flag values win over the environment,
// which wins over the .env file. flagCfg may be nil.
func Load(flagCfg *Settings) (*Settings, error) {
	var dotEnvFlag string
	if flagCfg != nil {
		dotEnvFlag = flagCfg.DotEnvPath
	}

	return newSettingsBuilder().
		withDotEnv(dotEnvFlag).
		withEnv().
		withFlags(flagCfg).
		build()
}
