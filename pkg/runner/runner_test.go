package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpipe/pkg/pipeline"
	"github.com/yaklabco/mdpipe/pkg/runner"
)

func newRunner() *runner.Runner {
	return runner.New(pipeline.New(pipeline.Options{}))
}

func TestRunRendersAlongsideSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "index.md", "guide/setup.md")

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesRendered)
	assert.Zero(t, result.Stats.FilesErrored)
	assert.Positive(t, result.Stats.BytesWritten)

	content, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>index.md</h1>\n", string(content))

	_, err = os.Stat(filepath.Join(dir, "guide", "setup.html"))
	assert.NoError(t, err)
}

func TestRunMirrorsIntoOutputDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "index.md", "guide/setup.md")
	outDir := filepath.Join(dir, "public")

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir:   dir,
		OutputDir:    outDir,
		ExcludeGlobs: []string{"public/*"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Stats.FilesRendered)

	_, err = os.Stat(filepath.Join(outDir, "index.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "guide", "setup.html"))
	assert.NoError(t, err)
}

func TestRunDeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "c.md", "a.md", "b.md")

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Jobs:       3,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, "a.md", filepath.Base(result.Files[0].Path))
	assert.Equal(t, "b.md", filepath.Base(result.Files[1].Path))
	assert.Equal(t, "c.md", filepath.Base(result.Files[2].Path))
}

func TestRunRecordsPerFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "ok.md", "sub/broken.md")

	// A plain file where the mirrored output directory must go makes that
	// one file fail while the rest of the run succeeds.
	outDir := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "sub"), []byte("in the way"), 0o644))

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir:   dir,
		OutputDir:    outDir,
		ExcludeGlobs: []string{"public/*"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesRendered)
	assert.Equal(t, 1, result.Stats.FilesErrored)

	for _, outcome := range result.Files {
		if filepath.Base(outcome.Path) == "broken.md" {
			assert.Error(t, outcome.Error)
		} else {
			assert.NoError(t, outcome.Error)
		}
	}
}

func TestRunEmptyTree(t *testing.T) {
	t.Parallel()

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		workDir   string
		outputDir string
		want      string
	}{
		{
			name:    "alongside source",
			path:    "/src/docs/page.md",
			workDir: "/src",
			want:    "/src/docs/page.html",
		},
		{
			name:      "mirrored into output dir",
			path:      "/src/docs/page.md",
			workDir:   "/src",
			outputDir: "/out",
			want:      "/out/docs/page.html",
		},
		{
			name:      "outside work dir flattens",
			path:      "/elsewhere/page.md",
			workDir:   "/src",
			outputDir: "/out",
			want:      "/out/page.html",
		},
		{
			name:    "markdown extension variants",
			path:    "/src/page.markdown",
			workDir: "/src",
			want:    "/src/page.html",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := runner.OutputPath(
				filepath.FromSlash(tc.path),
				filepath.FromSlash(tc.workDir),
				filepath.FromSlash(tc.outputDir),
			)
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tc.want), got)
		})
	}
}
