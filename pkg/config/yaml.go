package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Unknown keys are
// rejected so a typo in a config file fails loudly instead of silently
// doing nothing.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: all defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Template is the commented starter configuration written by `mdpipe init`.
const Template = `# mdpipe configuration.
# See 'mdpipe --help' for the full option reference.

# Result caching: "lru", "lfu", or "none".
cache:
  strategy: lru
  capacity: 256

render:
  # Infer a language-X class for fenced code blocks without an info string.
  detect_language: false

# Colorize debug views: "auto", "always", or "never".
color: auto

# Logger verbosity: "debug", "info", "warn", or "error".
log_level: info
`
