package config

import (
	"os"
	"testing"
)

var settingsEnvKeys = []string{
	"E2E_TARGET", "E2E_FORMAT", "E2E_BASE_CONFIG", "E2E_DOTENV", "E2E_SCREENSHOT_DIR",
	"BROWSERSTACK_USERNAME", "BROWSERSTACK_ACCESS_KEY", "BS_APP_URL",
	"ANDROID_DEVICE_NAME", "ANDROID_PLATFORM_VERSION", "ANDROID_UDID",
	"WEBDRIVER_URL", "WEBDRIVER_SESSION_ID", "WEBDRIVER_REQUEST_TIMEOUT",
}

// clearSettingsEnv unsets every variable read into Settings for the duration
// of the test; t.Setenv restores the previous values on cleanup.
func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range settingsEnvKeys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeTempFile(t *testing.T, pattern, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}
	return f.Name()
}
