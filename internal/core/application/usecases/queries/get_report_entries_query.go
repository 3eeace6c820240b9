package queries

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/report"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

// MaxReportEntries caps how many report lines one query may return.
const MaxReportEntries = 500

var (
	// ErrGetReportEntriesQueryIsNotConstructed is returned when the query was not built by NewGetReportEntriesQuery.
	ErrGetReportEntriesQueryIsNotConstructed = errors.New(
		"GetReportEntriesQuery must be created via NewGetReportEntriesQuery constructor",
	)
)

// ReportArchive is a queryable copy of the report, such as the Postgres mirror.
type ReportArchive interface {
	Recent(ctx context.Context, limit int) ([]report.ArchivedEntry, error)
	Count(ctx context.Context) (int64, error)
}

// GetReportEntriesQuery reads the latest report lines back from the archive.
type GetReportEntriesQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetReportEntriesQuery accepts limits from 1 to MaxReportEntries.
func NewGetReportEntriesQuery(limit int) (GetReportEntriesQuery, error) {
	if limit < 1 || limit > MaxReportEntries {
		return GetReportEntriesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxReportEntries)
	}
	return GetReportEntriesQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReportEntriesQuery) Validate() error {
	return q.guard.Validate(ErrGetReportEntriesQueryIsNotConstructed)
}

// Limit returns the maximum number of lines to read.
func (q GetReportEntriesQuery) Limit() int {
	return q.limit
}

// GetReportEntriesQueryResponse holds the archive size and the latest lines, oldest first.
type GetReportEntriesQueryResponse struct {
	Total   int64
	Entries []ReportEntryResponse
}

// ReportEntryResponse is one archived report line.
type ReportEntryResponse struct {
	ID   string
	Line string
}
