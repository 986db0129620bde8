package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/yaklabco/mdpipe/internal/logging"
	"github.com/yaklabco/mdpipe/pkg/fsutil"
	"github.com/yaklabco/mdpipe/pkg/pipeline"
)

// Runner orchestrates multi-file HTML builds using a pipeline.Service.
type Runner struct {
	// Service handles per-file rendering. It is shared across workers; the
	// service is safe for concurrent use.
	Service *pipeline.Service
}

// New creates a new Runner with the given service.
func New(svc *pipeline.Service) *Runner {
	return &Runner{Service: svc}
}

// Run discovers files under opts.Paths and renders them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate
// stats. Per-file failures are recorded, not fatal; Run only errors on
// discovery failure or context cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	logging.FromContext(ctx).Debug("starting build",
		"files", len(files),
		"jobs", jobs,
	)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	// Start workers.
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, workDir, opts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect results. Workers may complete out of order, so index by path
	// and rebuild in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker renders files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	workDir string,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.buildFile(path, workDir, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// buildFile renders one source file and writes the HTML output.
func (r *Runner) buildFile(path, workDir string, opts Options) FileOutcome {
	start := time.Now()
	outcome := FileOutcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		outcome.Duration = time.Since(start)
		return outcome
	}

	html := r.Service.Render(string(data)) + "\n"

	outPath, err := OutputPath(path, workDir, opts.OutputDir)
	if err != nil {
		outcome.Error = err
		outcome.Duration = time.Since(start)
		return outcome
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			outcome.Error = fmt.Errorf("create output directory: %w", err)
			outcome.Duration = time.Since(start)
			return outcome
		}
	}

	if err := fsutil.WriteAtomic(outPath, []byte(html), fsutil.DefaultFileMode); err != nil {
		outcome.Error = err
		outcome.Duration = time.Since(start)
		return outcome
	}

	outcome.OutputPath = outPath
	outcome.Bytes = len(html)
	outcome.Duration = time.Since(start)
	return outcome
}

// OutputPath maps a source path to its HTML destination. With an output
// directory the source tree structure relative to workDir is mirrored
// beneath it; otherwise the .html file lands next to the source.
func OutputPath(path, workDir, outputDir string) (string, error) {
	htmlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	if outputDir == "" {
		return htmlPath, nil
	}

	rel, err := filepath.Rel(workDir, htmlPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		// Sources outside the working directory flatten to their base name.
		rel = filepath.Base(htmlPath)
	}
	return filepath.Join(outputDir, rel), nil
}
