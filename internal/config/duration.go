package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can be written as
// human-readable strings ("2s", "1500ms") or as numeric seconds.
type Duration struct {
	time.Duration
}

// MarshalYAML emits the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}

// UnmarshalYAML accepts either a duration string or numeric seconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var asString string
	if err := node.Decode(&asString); err == nil {
		parsed, err := time.ParseDuration(asString)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", asString, err)
		}
		d.Duration = parsed
		return nil
	}

	var asSeconds float64
	if err := node.Decode(&asSeconds); err == nil {
		d.Duration = time.Duration(asSeconds * float64(time.Second))
		return nil
	}

	return fmt.Errorf("unsupported duration value %q", node.Value)
}

// IsZero reports whether the duration is zero.
func (d Duration) IsZero() bool {
	return d.Duration == 0
}
