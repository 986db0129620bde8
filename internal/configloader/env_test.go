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

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MDPIPE_COLOR", "never")
	t.Setenv("MDPIPE_LOG_LEVEL", "debug")
	t.Setenv("MDPIPE_CACHE_STRATEGY", "lfu")
	t.Setenv("MDPIPE_CACHE_CAPACITY", "32")
	t.Setenv("MDPIPE_DETECT_LANGUAGE", "true")

	cfg := config.NewConfig()
	require.NoError(t, configloader.LoadFromEnv(cfg))

	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "lfu", cfg.Cache.Strategy)
	assert.Equal(t, 32, cfg.Cache.Capacity)
	assert.True(t, cfg.Render.DetectLanguage)
}

func TestLoadFromEnvBadCapacity(t *testing.T) {
	t.Setenv("MDPIPE_CACHE_CAPACITY", "many")

	err := configloader.LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MDPIPE_CACHE_CAPACITY")
}

func TestLoadFromEnvBadBool(t *testing.T) {
	t.Setenv("MDPIPE_DETECT_LANGUAGE", "maybe")

	assert.Error(t, configloader.LoadFromEnv(config.NewConfig()))
}

func TestLoadFromEnvNil(t *testing.T) {
	assert.NoError(t, configloader.LoadFromEnv(nil))
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("MDPIPE_LOG_LEVEL", "error")
	isolateUserConfig(t)

	dir := newProjectDir(t)
	path := filepath.Join(dir, ".mdpipe.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	result, err := configloader.Load(configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "error", result.Config.LogLevel)
}
