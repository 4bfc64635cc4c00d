package config

import "errors"

var (
	// ErrUnknownTarget indicates a target other than emulator-ci, android or ios.
	ErrUnknownTarget = errors.New("unknown target")
	// ErrUnknownFormat indicates an output format other than json or yaml.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnsupportedBaseFormat indicates a base config file whose extension
	// is neither .json, .yaml nor .yml.
	ErrUnsupportedBaseFormat = errors.New("unsupported base config format")
	// ErrDotEnv indicates an existing .env file that could not be parsed.
	ErrDotEnv = errors.New("error loading dotenv file")
)
