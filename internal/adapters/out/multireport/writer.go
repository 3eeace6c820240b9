// Package multireport fans report entries out to several report sinks.
package multireport

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/report"
	"depot/internal/core/ports"
)

// Writer forwards every entry to each sink in order. A failing sink does not
// stop the others; all failures are returned joined.
type Writer struct {
	sinks []ports.ReportWriter
}

// NewWriter creates a writer fanning out to sinks in order.
func NewWriter(sinks ...ports.ReportWriter) *Writer {
	return &Writer{sinks: sinks}
}

// Append writes entry to every sink, even after a failure, and joins the errors.
func (w *Writer) Append(ctx context.Context, entry report.Entry) error {
	var errs []error
	for _, sink := range w.sinks {
		if err := sink.Append(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
