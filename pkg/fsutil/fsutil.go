// Package fsutil provides the file system primitives the CLI layer needs:
// categorized reads for input documents and atomic writes for rendered
// output. The core pipeline itself never touches the file system.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// StdinPath is the conventional path argument that selects standard input.
const StdinPath = "-"

// ReadDocument loads an input document from a path, or from the given
// reader when path is "-". Errors are wrapped with the sentinel errors
// above so callers can map them to exit codes.
func ReadDocument(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(content), nil
	}

	stat, err := os.Stat(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		case os.IsPermission(err):
			return "", fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		default:
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	if stat.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return "", fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(content), nil
}
