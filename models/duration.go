// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Milliseconds is a time.Duration rendered as an integer number of
// milliseconds, the unit the test runner uses for all timeouts.
//
// When decoding, both a number (milliseconds) and a Go duration string such
// as "15s" or "3m" are accepted.
type Milliseconds time.Duration

// Duration returns m as a time.Duration.
func (m Milliseconds) Duration() time.Duration {
	return time.Duration(m)
}

// MarshalJSON implements json.Marshaler.
func (m Milliseconds) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(m).Milliseconds())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Milliseconds) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*m = Milliseconds(time.Duration(value * float64(time.Millisecond)))
		return nil
	case string:
		return m.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// MarshalYAML implements yaml.Marshaler.
func (m Milliseconds) MarshalYAML() (any, error) {
	return time.Duration(m).Milliseconds(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Milliseconds) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d", node.Line)
	}
	return m.parse(node.Value)
}

func (m *Milliseconds) parse(s string) error {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*m = Milliseconds(time.Duration(ms) * time.Millisecond)
		return nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*m = Milliseconds(d)
	return nil
}
