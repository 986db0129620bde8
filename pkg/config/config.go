// Package config defines core configuration types for mdpipe.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import (
	"errors"
	"fmt"
)

// ColorMode controls when CLI output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is recognized.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Engine selects which renderer produces HTML output.
type Engine string

const (
	// EngineMdpipe is the built-in pipeline.
	EngineMdpipe Engine = "mdpipe"

	// EngineGoldmark routes rendering through the goldmark reference engine.
	EngineGoldmark Engine = "goldmark"
)

// IsValid returns true if the engine name is recognized.
func (e Engine) IsValid() bool {
	switch e {
	case EngineMdpipe, EngineGoldmark:
		return true
	default:
		return false
	}
}

// CacheConfig controls result caching.
type CacheConfig struct {
	// Strategy is "lru", "lfu", or "none".
	Strategy string `yaml:"strategy"`

	// Capacity is the per-store entry limit. 0 uses the built-in default.
	Capacity int `yaml:"capacity"`
}

// RenderConfig controls HTML output.
type RenderConfig struct {
	// DetectLanguage infers a language class for fenced code blocks that
	// carry no info string.
	DetectLanguage bool `yaml:"detect_language"`
}

// Config is the root configuration structure for mdpipe.
type Config struct {
	Cache  CacheConfig  `yaml:"cache"`
	Render RenderConfig `yaml:"render"`

	// Color controls colorized debug views ("auto", "always", "never").
	Color ColorMode `yaml:"color"`

	// LogLevel sets the logger level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// Output is the destination file for rendered HTML; empty means stdout.
	Output string `yaml:"-"`

	// Engine selects the HTML renderer.
	Engine Engine `yaml:"-"`

	// Compare renders with both engines and reports divergence.
	Compare bool `yaml:"-"`

	// ExportJSON additionally prints the AST as JSON after HTML output.
	ExportJSON bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Cache:    CacheConfig{Strategy: "lru"},
		Color:    ColorAuto,
		LogLevel: "info",
		Engine:   EngineMdpipe,
	}
}

// ErrInvalidConfig wraps all validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if !c.Color.IsValid() {
		return fmt.Errorf("%w: color %q", ErrInvalidConfig, c.Color)
	}
	if c.Engine != "" && !c.Engine.IsValid() {
		return fmt.Errorf("%w: engine %q", ErrInvalidConfig, c.Engine)
	}
	switch c.Cache.Strategy {
	case "", "lru", "lfu", "none":
	default:
		return fmt.Errorf("%w: cache strategy %q", ErrInvalidConfig, c.Cache.Strategy)
	}
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("%w: cache capacity %d", ErrInvalidConfig, c.Cache.Capacity)
	}
	return nil
}
