// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Runner identifies where the test runner executes worker processes.
//
// Device-farm routing is not a runner value: a remote run keeps the local
// runner and is recognised by its credentials and service integration.
type Runner string

// RunnerLocal runs workers on the machine that started the runner.
const RunnerLocal Runner = "local"

// RunConfig is the configuration handed to the external test runner at
// startup. It is built once per process and never mutated afterwards.
//
// Zero-valued connection and credential fields are omitted when rendered, so
// a remote config with cleared Hostname, Port and Path leaves connection
// handling to the device-farm service.
type RunConfig struct {
	Runner Runner `json:"runner" yaml:"runner"`

	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`

	User string `json:"user,omitempty" yaml:"user,omitempty"`
	Key  string `json:"key,omitempty" yaml:"key,omitempty"`

	Specs        []string `json:"specs,omitempty" yaml:"specs,omitempty"`
	Exclude      []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	MaxInstances int      `json:"maxInstances,omitempty" yaml:"maxInstances,omitempty"`

	Capabilities []Capability `json:"capabilities" yaml:"capabilities"`

	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	Bail     int    `json:"bail" yaml:"bail"`

	WaitforTimeout         Milliseconds `json:"waitforTimeout,omitempty" yaml:"waitforTimeout,omitempty"`
	ConnectionRetryTimeout Milliseconds `json:"connectionRetryTimeout,omitempty" yaml:"connectionRetryTimeout,omitempty"`
	ConnectionRetryCount   int          `json:"connectionRetryCount,omitempty" yaml:"connectionRetryCount,omitempty"`

	Services  []string   `json:"services,omitempty" yaml:"services,omitempty"`
	Framework string     `json:"framework,omitempty" yaml:"framework,omitempty"`
	Reporters []Reporter `json:"reporters,omitempty" yaml:"reporters,omitempty"`
	MochaOpts MochaOpts  `json:"mochaOpts,omitzero" yaml:"mochaOpts,omitempty"`

	// Hooks are process-local callbacks and are never rendered.
	Hooks Hooks `json:"-" yaml:"-"`
}

// MochaOpts carries options forwarded to the mocha framework adapter.
type MochaOpts struct {
	UI      string       `json:"ui,omitempty" yaml:"ui,omitempty"`
	Timeout Milliseconds `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Clone returns a copy of c whose slices and capability flags do not share
// backing storage with c.
func (c RunConfig) Clone() RunConfig {
	out := c
	out.Specs = cloneStrings(c.Specs)
	out.Exclude = cloneStrings(c.Exclude)
	out.Services = cloneStrings(c.Services)

	if c.Capabilities != nil {
		out.Capabilities = make([]Capability, len(c.Capabilities))
		for i, capability := range c.Capabilities {
			out.Capabilities[i] = capability.Clone()
		}
	}

	if c.Reporters != nil {
		out.Reporters = make([]Reporter, len(c.Reporters))
		for i, reporter := range c.Reporters {
			out.Reporters[i] = reporter.Clone()
		}
	}

	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
