// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [Settings] after fallbacks were applied.
//
// Credentials and the app URL are not checked: a remote run with missing
// values is still rendered and the device farm rejects the session.
func (s *Settings) validate() error {
	switch s.Target {
	case TargetEmulatorCI, TargetAndroid, TargetIOS:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTarget, s.Target)
	}

	switch s.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, s.Format)
	}

	return nil
}
