// Package docio implements the file boundary of the checker: reading input
// documents and writing formatted results. Failures here are categorized so
// the CLI can report them before the scoring core is ever invoked.
package docio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
)

// DefaultPrecision is the number of decimals in a formatted result.
const DefaultPrecision = 2

// Common errors
var (
	// ErrFileNotFound is returned when an input document does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrIO is returned for any other read or write failure
	ErrIO = errors.New("i/o failure")
)

// PathError wraps a boundary failure with the operation and path involved.
type PathError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("docio: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target
func (e *PathError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// ReadDocument reads one UTF-8 text document. A missing file maps to
// ErrFileNotFound and every other failure to ErrIO, so callers can fail
// fast with a categorized message instead of scoring unreadable input.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &PathError{Op: "read", Path: path, Err: ErrFileNotFound}
		}
		return "", &PathError{Op: "read", Path: path, Err: fmt.Errorf("%w: %v", ErrIO, err)}
	}
	return string(data), nil
}

// WriteResult writes score to path as a fixed-point decimal, e.g. "0.87"
// at the default precision of two decimals.
func WriteResult(path string, score float64, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	out := strconv.FormatFloat(score, 'f', precision, 64)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return &PathError{Op: "write", Path: path, Err: fmt.Errorf("%w: %v", ErrIO, err)}
	}
	return nil
}
