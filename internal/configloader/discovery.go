// Package configloader resolves the effective mdpipe configuration from
// config files, environment variables, and CLI flags.
package configloader

import (
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// User is the user-level config path (e.g., ~/.config/mdpipe/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.mdpipe.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names we search for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".mdpipe.yml",
	".mdpipe.yaml",
	"mdpipe.yml",
	"mdpipe.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root, ending the
// upward project-config search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations:
//   - User config at $XDG_CONFIG_HOME/mdpipe/config.{yaml,yml}
//   - Project config by searching upward from workDir for .mdpipe.{yml,yaml}
func DiscoverPaths(workDir string) *ConfigPaths {
	paths := &ConfigPaths{}

	if userDir := userConfigDir(); userDir != "" {
		for _, name := range []string{"config.yaml", "config.yml"} {
			candidate := filepath.Join(userDir, "mdpipe", name)
			if fileExists(candidate) {
				paths.User = candidate
				break
			}
		}
	}

	paths.Project = findProjectConfig(workDir)

	return paths
}

// userConfigDir resolves the XDG config directory, honoring XDG_CONFIG_HOME.
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// findProjectConfig searches upward from dir for a project config file,
// stopping at a VCS root or the file system root.
func findProjectConfig(dir string) string {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return ""
		}
	}

	for {
		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate
			}
		}

		atRoot := false
		for _, marker := range vcsRootMarkers {
			if dirExists(filepath.Join(dir, marker)) {
				atRoot = true
				break
			}
		}

		parent := filepath.Dir(dir)
		if atRoot || parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

func dirExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}
