// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// ErrInvalidReporter is returned when a reporter entry is neither a bare name
// nor a [name, options] pair.
var ErrInvalidReporter = errors.New("invalid reporter entry")

// Reporter is a pluggable output formatter consuming test-execution events.
//
// The runner accepts two shapes for a reporter entry: a bare name ("spec")
// or a two-element array of name and options (["allure", {...}]). Reporter
// renders to the bare name when Options is empty and to the pair otherwise.
type Reporter struct {
	Name    string
	Options map[string]any
}

// Clone returns a copy of r with its own Options map.
func (r Reporter) Clone() Reporter {
	return Reporter{Name: r.Name, Options: maps.Clone(r.Options)}
}

func (r Reporter) shape() any {
	if len(r.Options) == 0 {
		return r.Name
	}
	return []any{r.Name, r.Options}
}

// MarshalJSON implements json.Marshaler.
func (r Reporter) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.shape())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Reporter) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*r = Reporter{Name: name}
		return nil
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil || len(pair) == 0 || len(pair) > 2 {
		return fmt.Errorf("%w: %s", ErrInvalidReporter, string(b))
	}

	if err := json.Unmarshal(pair[0], &name); err != nil {
		return fmt.Errorf("%w: reporter name: %v", ErrInvalidReporter, err)
	}

	out := Reporter{Name: name}
	if len(pair) == 2 {
		if err := json.Unmarshal(pair[1], &out.Options); err != nil {
			return fmt.Errorf("%w: reporter options: %v", ErrInvalidReporter, err)
		}
	}

	*r = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Reporter) MarshalYAML() (any, error) {
	return r.shape(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Reporter) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = Reporter{Name: node.Value}
		return nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 || len(node.Content) > 2 {
			return fmt.Errorf("%w: line %d", ErrInvalidReporter, node.Line)
		}

		out := Reporter{}
		if err := node.Content[0].Decode(&out.Name); err != nil {
			return fmt.Errorf("%w: reporter name: %v", ErrInvalidReporter, err)
		}
		if len(node.Content) == 2 {
			if err := node.Content[1].Decode(&out.Options); err != nil {
				return fmt.Errorf("%w: reporter options: %v", ErrInvalidReporter, err)
			}
		}

		*r = out
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidReporter, node.Line)
	}
}
