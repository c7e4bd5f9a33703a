package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document renders the resolved configuration as YAML.
// Durations come out in their configured form ("1h0m0s", "30s").
func Document(c *Config) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
