package runner

import "time"

// FileOutcome records the build result for a single source file.
type FileOutcome struct {
	// Path is the source file that was processed.
	Path string

	// OutputPath is the destination the HTML was written to.
	OutputPath string

	// Bytes is the size of the written HTML.
	Bytes int

	// Duration is the per-file wall time, reading included.
	Duration time.Duration

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesRendered is the number of files successfully rendered.
	FilesRendered int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// BytesWritten is the total HTML output size across all files.
	BytesWritten int64
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesRendered++
	r.Stats.BytesWritten += int64(outcome.Bytes)
}
