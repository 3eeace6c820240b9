package ports

import (
	"context"

	"depot/internal/core/domain/model/report"
)

// ReportWriter appends entries to the durable, append-only depot report.
// Implementations must never truncate or rewrite earlier entries.
type ReportWriter interface {
	Append(ctx context.Context, entry report.Entry) error
}
