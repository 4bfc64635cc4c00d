// Package config loads the typed settings that drive run configuration
// production.
//
// Settings are assembled from the following sources, later sources
// overriding earlier non-zero fields:
//  1. .env file (never overrides variables already in the environment)
//  2. Environment variables
//  3. Command-line flags
//
// Missing values are then defaulted in one place, so the "variable not set"
// decision is made exactly once. The main entry point is [Load]; [LoadBaseFile]
// reads an optional base run configuration from JSON or YAML.
package config
