// Package reportfile appends depot report entries to a text file.
package reportfile

import (
	"context"
	"fmt"
	"os"

	"depot/internal/core/domain/model/report"
)

// Writer appends one line per entry to the file at path. The file is opened
// and closed for every entry and is created when missing; existing content is
// never truncated.
type Writer struct {
	path string
}

// NewWriter creates a writer appending to the file at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the report file location.
func (w *Writer) Path() string {
	return w.path
}

// Append writes entry as one line at the end of the file, creating it if needed.
func (w *Writer) Append(_ context.Context, entry report.Entry) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append report: open %q: %w", w.path, err)
	}

	if _, err = f.WriteString(entry.Line() + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("append report: write %q: %w", w.path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("append report: close %q: %w", w.path, err)
	}
	return nil
}
