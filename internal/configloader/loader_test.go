package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpipe/internal/configloader"
	"github.com/yaklabco/mdpipe/pkg/config"
)

// isolateUserConfig points XDG_CONFIG_HOME at an empty directory so tests
// never pick up the developer's real user config.
func isolateUserConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

// newProjectDir creates a directory holding a VCS marker so the upward
// config search stops inside it.
func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolateUserConfig(t)

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: newProjectDir(t),
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Empty(t, result.LoadedFrom)
	assert.Equal(t, "lru", result.Config.Cache.Strategy)
	assert.Equal(t, config.ColorAuto, result.Config.Color)
}

func TestLoadProjectConfig(t *testing.T) {
	isolateUserConfig(t)

	dir := newProjectDir(t)
	path := filepath.Join(dir, ".mdpipe.yml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  strategy: lfu\nlog_level: debug\n"), 0o644))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{path}, result.LoadedFrom)
	assert.Equal(t, "lfu", result.Config.Cache.Strategy)
	assert.Equal(t, "debug", result.Config.LogLevel)
	// Unset fields keep their defaults.
	assert.Equal(t, config.ColorAuto, result.Config.Color)
}

func TestLoadFromSubdirectory(t *testing.T) {
	isolateUserConfig(t)

	dir := newProjectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdpipe.yml"), []byte("color: never\n"), 0o644))

	sub := filepath.Join(dir, "docs", "guide")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: sub,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.ColorNever, result.Config.Color)
}

func TestLoadExplicitPath(t *testing.T) {
	isolateUserConfig(t)

	dir := newProjectDir(t)
	// The project config must lose to the explicit one.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdpipe.yml"), []byte("log_level: warn\n"), 0o644))

	explicit := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("log_level: error\n"), 0o644))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{explicit}, result.LoadedFrom)
	assert.Equal(t, "error", result.Config.LogLevel)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	isolateUserConfig(t)

	_, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yml"),
		IgnoreEnv:    true,
	})
	assert.Error(t, err)
}

func TestLoadInvalidConfigFile(t *testing.T) {
	isolateUserConfig(t)

	dir := newProjectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdpipe.yml"), []byte("color: occasionally\n"), 0o644))

	_, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadUserConfigPrecedence(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	userDir := filepath.Join(xdg, "mdpipe")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "config.yaml"),
		[]byte("log_level: warn\ncolor: never\n"), 0o644))

	dir := newProjectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mdpipe.yml"), []byte("log_level: debug\n"), 0o644))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	require.Len(t, result.LoadedFrom, 2)
	// Project config overrides the user config where both set a field.
	assert.Equal(t, "debug", result.Config.LogLevel)
	// User config survives for fields the project config leaves unset.
	assert.Equal(t, config.ColorNever, result.Config.Color)
}
