package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpipe/internal/configloader"
)

func TestDiscoverPathsProject(t *testing.T) {
	isolateUserConfig(t)

	dir := newProjectDir(t)
	want := filepath.Join(dir, ".mdpipe.yml")
	require.NoError(t, os.WriteFile(want, []byte(""), 0o644))

	paths := configloader.DiscoverPaths(dir)
	assert.Equal(t, want, paths.Project)
	assert.Empty(t, paths.User)
}

func TestDiscoverPathsNamePreference(t *testing.T) {
	isolateUserConfig(t)

	dir := newProjectDir(t)
	preferred := filepath.Join(dir, ".mdpipe.yml")
	require.NoError(t, os.WriteFile(preferred, []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mdpipe.yaml"), []byte(""), 0o644))

	paths := configloader.DiscoverPaths(dir)
	assert.Equal(t, preferred, paths.Project)
}

func TestDiscoverPathsStopsAtVCSRoot(t *testing.T) {
	isolateUserConfig(t)

	// Config above the VCS root must not be found from below it.
	outer := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".mdpipe.yml"), []byte(""), 0o644))

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	paths := configloader.DiscoverPaths(repo)
	assert.Empty(t, paths.Project)
}

func TestDiscoverPathsUserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	userDir := filepath.Join(xdg, "mdpipe")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	want := filepath.Join(userDir, "config.yaml")
	require.NoError(t, os.WriteFile(want, []byte(""), 0o644))

	paths := configloader.DiscoverPaths(newProjectDir(t))
	assert.Equal(t, want, paths.User)
}
