package configloader

import (
	"fmt"
	"os"

	"github.com/yaklabco/mdpipe/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project and user config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Environment variables (MDPIPE_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.mdpipe.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/mdpipe/config.yaml)
//  5. Defaults
//
// CLI flags are applied by the caller on top of the result.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.NewConfig()}

	var files []string
	if opts.ExplicitPath != "" {
		if !fileExists(opts.ExplicitPath) {
			return nil, fmt.Errorf("config file not found: %s", opts.ExplicitPath)
		}
		files = []string{opts.ExplicitPath}
	} else {
		paths := DiscoverPaths(opts.WorkingDir)
		// Lowest precedence first; later files override earlier ones.
		for _, path := range []string{paths.User, paths.Project} {
			if path != "" {
				files = append(files, path)
			}
		}
	}

	for _, path := range files {
		if err := mergeFile(result.Config, path); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	if err := result.Config.Validate(); err != nil {
		return nil, err
	}

	return result, nil
}

// mergeFile overlays the settings from one config file onto cfg.
func mergeFile(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	loaded, err := config.FromYAML(data)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	merge(cfg, loaded)
	return nil
}

// merge copies every explicitly set field of src onto dst. Zero values in
// src mean "not set" and leave dst untouched.
func merge(dst, src *config.Config) {
	if src.Cache.Strategy != "" {
		dst.Cache.Strategy = src.Cache.Strategy
	}
	if src.Cache.Capacity != 0 {
		dst.Cache.Capacity = src.Cache.Capacity
	}
	if src.Render.DetectLanguage {
		dst.Render.DetectLanguage = true
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}
