package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the settings flags on fs and returns the [Settings]
// they populate once fs is parsed. Unset flags leave zero values, which do
// not override the environment when passed to [Load].
//
// Flags:
//
//	-t/--target target config: emulator-ci, android or ios
//	-f/--format output format: json or yaml
//	-b/--base base run config file (.json, .yaml, .yml)
//	--env-file .env file path
//	--screenshot-dir directory for failure screenshots
//	--webdriver-url base URL of the driver endpoint
//	--session-id active driver session id
//	--request-timeout screenshot request timeout (e.g. "30s")
func BindFlags(fs *pflag.FlagSet) *Settings {
	cfg := &Settings{}

	fs.StringVarP((*string)(&cfg.Target), "target", "t", "", "Target config: emulator-ci, android or ios")
	fs.StringVarP((*string)(&cfg.Format), "format", "f", "", "Output format: json or yaml")
	fs.StringVarP(&cfg.BaseConfigPath, "base", "b", "", "Base run config file (.json, .yaml, .yml)")
	fs.StringVar(&cfg.DotEnvPath, "env-file", "", "Path to .env file")
	fs.StringVar(&cfg.ScreenshotDir, "screenshot-dir", "", "Directory for failure screenshots")
	fs.StringVar(&cfg.WebDriver.URL, "webdriver-url", "", "Driver endpoint base URL")
	fs.StringVar(&cfg.WebDriver.SessionID, "session-id", "", "Active driver session id")
	fs.DurationVar(&cfg.WebDriver.RequestTimeout, "request-timeout", 0, "Screenshot request timeout (e.g. 30s)")

	return cfg
}
