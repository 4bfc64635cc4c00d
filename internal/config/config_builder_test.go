package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newSettingsBuilder ────────────────────────────────────────────────────────

func TestNewSettingsBuilder_InitialState(t *testing.T) {
	b := newSettingsBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder yields the fallback
// values and nothing else.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newSettingsBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, TargetEmulatorCI, cfg.Target)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, DefaultDotEnvPath, cfg.DotEnvPath)
	assert.Equal(t, DefaultScreenshots, cfg.ScreenshotDir)
	assert.Equal(t, DefaultEmulatorID, cfg.Android.DeviceName)
	assert.Equal(t, DefaultEmulatorID, cfg.Android.UDID)
	assert.Empty(t, cfg.Android.PlatformVersion)
	assert.Equal(t, DefaultWebDriverURL, cfg.WebDriver.URL)
	assert.Equal(t, DefaultWDTimeout, cfg.WebDriver.RequestTimeout)
	assert.Empty(t, cfg.BrowserStack)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newSettingsBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a later source overrides the
// non-zero fields of an earlier one and leaves the rest intact.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newSettingsBuilder()
	b.configs = append(b.configs,
		&Settings{Target: TargetAndroid, BrowserStack: BrowserStack{Username: "env-user", AccessKey: "env-key"}},
		&Settings{Target: TargetIOS, BrowserStack: BrowserStack{Username: "flag-user"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, TargetIOS, cfg.Target)
	assert.Equal(t, "flag-user", cfg.BrowserStack.Username)
	assert.Equal(t, "env-key", cfg.BrowserStack.AccessKey)
}

func TestBuild_UnknownTarget(t *testing.T) {
	b := newSettingsBuilder()
	b.configs = append(b.configs, &Settings{Target: "windows"})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func TestBuild_UnknownFormat(t *testing.T) {
	b := newSettingsBuilder()
	b.configs = append(b.configs, &Settings{Format: "toml"})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// ── withEnv / withFlags ──────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newSettingsBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearSettingsEnv(t)
	b := newSettingsBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("WEBDRIVER_REQUEST_TIMEOUT", "soon")

	b := newSettingsBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newSettingsBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_MalformedFileSetsError(t *testing.T) {
	path := writeTempFile(t, "*.env", "BAD LINE 'x\n")

	b := newSettingsBuilder().withDotEnv(path)
	assert.ErrorIs(t, b.err, ErrDotEnv)
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_NoAndroidEnv verifies the emulator fallbacks and that the platform
// version stays empty when ANDROID_PLATFORM_VERSION is unset.
func TestLoad_NoAndroidEnv(t *testing.T) {
	clearSettingsEnv(t)

	cfg, err := Load(&Settings{DotEnvPath: t.TempDir() + "/missing.env"})
	require.NoError(t, err)

	assert.Equal(t, "emulator-5554", cfg.Android.DeviceName)
	assert.Equal(t, "emulator-5554", cfg.Android.UDID)
	assert.Empty(t, cfg.Android.PlatformVersion)
}

// TestLoad_EmptyVariableCountsAsAbsent verifies that a variable set to the
// empty string takes the same fallback as an unset one.
func TestLoad_EmptyVariableCountsAsAbsent(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("ANDROID_DEVICE_NAME", "")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultEmulatorID, cfg.Android.DeviceName)
}

func TestLoad_FlagsWinOverEnv(t *testing.T) {
	clearSettingsEnv(t)
	setEnvVars(t, map[string]string{
		"E2E_TARGET":            "android",
		"BROWSERSTACK_USERNAME": "u1",
		"WEBDRIVER_URL":         "http://env:4723",
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagCfg := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--target", "ios", "--request-timeout", "5s"}))

	cfg, err := Load(flagCfg)
	require.NoError(t, err)

	assert.Equal(t, TargetIOS, cfg.Target)
	assert.Equal(t, "u1", cfg.BrowserStack.Username)
	assert.Equal(t, "http://env:4723", cfg.WebDriver.URL)
	assert.Equal(t, 5*time.Second, cfg.WebDriver.RequestTimeout)
}

func TestLoad_ReadsDotEnvFromFlag(t *testing.T) {
	clearSettingsEnv(t)
	path := writeTempFile(t, "*.env", "BS_APP_URL=bs://from-dotenv\n")

	cfg, err := Load(&Settings{DotEnvPath: path})
	require.NoError(t, err)
	assert.Equal(t, "bs://from-dotenv", cfg.BrowserStack.AppURL)
}

func TestLoad_IsDeterministic(t *testing.T) {
	clearSettingsEnv(t)
	setEnvVars(t, map[string]string{
		"BROWSERSTACK_USERNAME":    "u1",
		"ANDROID_PLATFORM_VERSION": "11",
	})

	first, err := Load(nil)
	require.NoError(t, err)
	second, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
