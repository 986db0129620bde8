package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpipe/internal/logging"
	"github.com/yaklabco/mdpipe/pkg/runner"
)

type buildFlags struct {
	outputDir string
	exclude   []string
	jobs      int
}

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [paths...]",
		Short: "Render many Markdown files to HTML",
		Long: `Discover Markdown files under the given paths and render each to an
HTML fragment file, processing files concurrently. Without paths the
current directory is used. Hidden directories are skipped.

Examples:
  mdpipe build docs/                 # docs/guide.md -> docs/guide.html
  mdpipe build docs/ -d dist         # mirror the tree under dist/
  mdpipe build --exclude 'vendor/*'  # skip matching paths`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputDir, "out-dir", "d", "", "output directory (default: next to each source file)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns of paths to skip")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of concurrent workers (0 = number of CPUs)")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string, flags *buildFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	result, err := runner.New(svc).Run(ctx, runner.Options{
		Paths:        args,
		ExcludeGlobs: flags.exclude,
		OutputDir:    flags.outputDir,
		Jobs:         flags.jobs,
	})
	if err != nil {
		return err
	}

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Error("build failed",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
			continue
		}
		logger.Debug("rendered",
			logging.FieldPath, outcome.Path,
			logging.FieldOutput, outcome.OutputPath,
			logging.FieldDuration, outcome.Duration,
		)
	}

	logger.Info("build complete",
		"files", result.Stats.FilesRendered,
		"errors", result.Stats.FilesErrored,
		logging.FieldBytes, result.Stats.BytesWritten,
	)

	if result.Stats.FilesErrored > 0 {
		return fmt.Errorf("%d of %d files failed", result.Stats.FilesErrored, result.Stats.FilesDiscovered)
	}
	return nil
}
