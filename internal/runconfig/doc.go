// Package runconfig produces the run configurations handed to the test
// runner: a standalone CI configuration for a local Android emulator and
// BrowserStack variants for Android and iOS derived from a base configuration.
//
// Every producer is a pure function of its inputs. Overrides are applied
// field by field on a copy of the base, so the set of fields a producer
// changes is visible in one place.
package runconfig
