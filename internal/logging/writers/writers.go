// Package writers resolves a log output setting into an io.Writer.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/liatrio/liatrio-demo-api/internal/config/errz"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout  WriterType = "stdout"
	WriterTypeStderr  WriterType = "stderr"
	WriterTypeFile    WriterType = "file"
	WriterTypeUnknown WriterType = "unknown"
)

const filePrefix = "file://"

// ParseWriterType determines the writer type from an output string:
//   - "stdout" or "" - os.Stdout
//   - "stderr" - os.Stderr
//   - "file:///path/to/file" or "/path/to/file" - a file, directories created as needed
func ParseWriterType(output string) WriterType {
	switch {
	case output == "" || output == "stdout":
		return WriterTypeStdout
	case output == "stderr":
		return WriterTypeStderr
	case strings.HasPrefix(output, filePrefix):
		return WriterTypeFile
	case isFilePath(output):
		return WriterTypeFile
	default:
		return WriterTypeUnknown
	}
}

// Validate checks the output setting without opening anything.
func Validate(output string) error {
	if ParseWriterType(output) == WriterTypeUnknown {
		return fmt.Errorf("%w: unsupported output format %q", errz.ErrInvalidLogSink, output)
	}
	if strings.HasPrefix(output, filePrefix) && strings.TrimPrefix(output, filePrefix) == "" {
		return fmt.Errorf("%w: empty file path in %q", errz.ErrInvalidLogSink, output)
	}
	return nil
}

// CreateWriter creates an io.Writer based on the output setting.
// See ParseWriterType for the accepted forms.
func CreateWriter(output string) (io.Writer, error) {
	if err := Validate(output); err != nil {
		return nil, err
	}

	switch ParseWriterType(output) {
	case WriterTypeStdout:
		return os.Stdout, nil
	case WriterTypeStderr:
		return os.Stderr, nil
	default:
		return createFileWriter(strings.TrimPrefix(output, filePrefix))
	}
}

// isFilePath determines if the string represents a local file path
func isFilePath(path string) bool {
	// Reject URLs with schemes other than file://
	if strings.Contains(path, "://") {
		return false
	}
	return strings.Contains(path, "/") || strings.Contains(path, "\\")
}

// createFileWriter opens filePath for appending, creating parent directories
func createFileWriter(filePath string) (io.Writer, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}

	return file, nil
}
