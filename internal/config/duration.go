package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration reads a time.Duration from a YAML scalar such as "3s" or "1m30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return nil
	}

	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a scalar, got yaml kind %d", value.Kind)
	}

	if value.Value == "" {
		d.Duration = 0
		return nil
	}

	dur, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}

	d.Duration = dur

	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}
