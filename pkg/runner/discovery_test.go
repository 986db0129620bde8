package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpipe/pkg/runner"
)

// writeTree creates the given files (with trivial content) under dir.
func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, name := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# "+name+"\n"), 0o644))
	}
}

// relPaths converts discovered absolute paths back to slash-separated paths
// relative to dir, for compact assertions.
func relPaths(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscoverWalksDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir,
		"index.md",
		"guide/setup.md",
		"guide/usage.markdown",
		"notes.txt",
		"README.rst",
	)

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"guide/setup.md",
		"guide/usage.markdown",
		"index.md",
	}, relPaths(t, dir, files))
}

func TestDiscoverSkipsHiddenDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "doc.md", ".git/hook.md", ".cache/notes.md")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{"doc.md"}, relPaths(t, dir, files))
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "keep.md", "drafts/wip.md", "CHANGELOG.md")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"drafts/*", "CHANGELOG.md"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.md"}, relPaths(t, dir, files))
}

func TestDiscoverExplicitFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "a.md", "b.md")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		// Duplicates collapse; non-Markdown arguments are dropped.
		Paths: []string{"b.md", "b.md", "a.md"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.md", "b.md"}, relPaths(t, dir, files))
}

func TestDiscoverMissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"missing.md"},
	})
	assert.Error(t, err)
}

func TestDiscoverCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscoverCustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "page.mdown", "page.md")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".mdown"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"page.mdown"}, relPaths(t, dir, files))
}
