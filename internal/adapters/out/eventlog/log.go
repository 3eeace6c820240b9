// Package eventlog provides the run-wide event log: an in-memory list of lines
// that is written out once, typically when batch processing finishes.
package eventlog

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Log accumulates event lines in the order they were added.
// It is constructed once per process and passed to whoever needs it.
type Log struct {
	entries []string
}

// New creates an empty event log.
func New() *Log {
	return &Log{}
}

// AddEntry appends text as one line. No timestamp is added.
func (l *Log) AddEntry(text string) {
	l.entries = append(l.entries, text)
}

// Entries returns a copy of the accumulated lines.
func (l *Log) Entries() []string {
	return slices.Clone(l.entries)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// WriteTo writes every line followed by a newline.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, entry := range l.entries {
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// FlushToFile writes every line to path, replacing whatever the file held.
func (l *Log) FlushToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("flush event log: create %q: %w", path, err)
	}

	if _, err = l.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush event log: write %q: %w", path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("flush event log: close %q: %w", path, err)
	}
	return nil
}
