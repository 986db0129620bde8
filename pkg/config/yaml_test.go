package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpipe/pkg/config"
)

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Cache.Strategy = "lfu"
	cfg.Cache.Capacity = 64
	cfg.Render.DetectLanguage = true
	cfg.Color = config.ColorNever
	cfg.LogLevel = "debug"

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	loaded, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.Cache, loaded.Cache)
	assert.Equal(t, cfg.Render, loaded.Render)
	assert.Equal(t, cfg.Color, loaded.Color)
	assert.Equal(t, cfg.LogLevel, loaded.LogLevel)
}

func TestFromYAMLEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Cache.Strategy)
}

func TestFromYAMLUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("cache:\n  strateegy: lru\n"))
	assert.Error(t, err)
}

func TestFromYAMLMalformed(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("cache: [unclosed\n"))
	assert.Error(t, err)
}

func TestToYAMLNil(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestTemplateParses(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(config.Template))
	require.NoError(t, err)

	assert.Equal(t, "lru", cfg.Cache.Strategy)
	assert.Equal(t, 256, cfg.Cache.Capacity)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	require.NoError(t, cfg.Validate())
}
