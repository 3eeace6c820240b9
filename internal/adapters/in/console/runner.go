// Package console runs the depot in batch mode: load both input files, serve
// every queued customer, and write the event log once at the end.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"depot/internal/core/application/depot"
)

// Depot is the part of depot.Service the batch run drives.
type Depot interface {
	LoadCustomers(ctx context.Context, path string) (depot.LoadResult, error)
	LoadParcels(ctx context.Context, path string) (depot.LoadResult, error)
	ProcessNextCustomer(ctx context.Context) depot.ProcessResult
	IsQueueEmpty() bool
}

// EventLogFlusher writes the accumulated event log to a file.
type EventLogFlusher interface {
	FlushToFile(path string) error
}

// Paths names the files a batch run reads and writes.
type Paths struct {
	Customers string
	Parcels   string
	EventLog  string
}

// Summary counts what a batch run did.
type Summary struct {
	Customers depot.LoadResult
	Parcels   depot.LoadResult
	Processed int
	NotFound  int
}

// Runner drives one batch run over a depot.
type Runner struct {
	depot  Depot
	events EventLogFlusher
	paths  Paths
	out    io.Writer
	logger *slog.Logger
}

// NewRunner creates a Runner reading and writing the files in paths and printing to out.
func NewRunner(d Depot, events EventLogFlusher, paths Paths, out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		depot:  d,
		events: events,
		paths:  paths,
		out:    out,
		logger: logger.With("component", "console_runner"),
	}
}

// Run processes the whole queue. An unreadable input file is logged and the
// run continues with whatever was loaded. Only a failed event log flush is
// returned as an error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	var err error

	summary.Customers, err = r.depot.LoadCustomers(ctx, r.paths.Customers)
	if err != nil {
		r.logger.WarnContext(ctx, "Continuing without customers file", "path", r.paths.Customers, "error", err)
	}

	summary.Parcels, err = r.depot.LoadParcels(ctx, r.paths.Parcels)
	if err != nil {
		r.logger.WarnContext(ctx, "Continuing without parcels file", "path", r.paths.Parcels, "error", err)
	}

	for !r.depot.IsQueueEmpty() {
		switch r.depot.ProcessNextCustomer(ctx).Outcome {
		case depot.Processed:
			summary.Processed++
		case depot.NotFound:
			summary.NotFound++
		case depot.QueueEmpty:
		}
	}

	if err = r.events.FlushToFile(r.paths.EventLog); err != nil {
		return summary, err
	}

	r.logger.InfoContext(ctx, "Batch run finished",
		"processed", summary.Processed, "not_found", summary.NotFound, "event_log", r.paths.EventLog)
	_, _ = fmt.Fprintf(r.out, "All customers processed. Log written to %s.\n", r.paths.EventLog)
	return summary, nil
}
