package runconfig

import (
	"fmt"

	"github.com/MKhiriev/mobile-e2e-config/internal/config"
	"github.com/MKhiriev/mobile-e2e-config/internal/hooks"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

// Build produces the run configuration selected by settings.Target. lc is
// only used by the emulator target; remote targets carry no hooks.
func Build(settings *config.Settings, lc *hooks.Lifecycle) (models.RunConfig, error) {
	switch settings.Target {
	case config.TargetEmulatorCI:
		return NewEmulatorCI(settings.Android, lc), nil
	case config.TargetAndroid, config.TargetIOS:
		base, err := ResolveBase(settings.BaseConfigPath)
		if err != nil {
			return models.RunConfig{}, fmt.Errorf("resolve base config: %w", err)
		}
		if settings.Target == config.TargetAndroid {
			return NewAndroidRemote(base, settings.BrowserStack), nil
		}
		return NewIOSRemote(base, settings.BrowserStack), nil
	default:
		return models.RunConfig{}, fmt.Errorf("%w: %q", config.ErrUnknownTarget, settings.Target)
	}
}
