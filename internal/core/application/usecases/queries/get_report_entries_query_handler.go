package queries

import "context"

// GetReportEntriesQueryHandler reads report lines back from the archive.
type GetReportEntriesQueryHandler struct {
	archive ReportArchive
}

// NewGetReportEntriesQueryHandler creates a new GetReportEntriesQueryHandler.
func NewGetReportEntriesQueryHandler(archive ReportArchive) GetReportEntriesQueryHandler {
	return GetReportEntriesQueryHandler{archive: archive}
}

// Handle returns the latest entries oldest first, as they appear in the report file.
func (h GetReportEntriesQueryHandler) Handle(
	ctx context.Context,
	query GetReportEntriesQuery,
) (GetReportEntriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReportEntriesQueryResponse{}, err
	}

	total, err := h.archive.Count(ctx)
	if err != nil {
		return GetReportEntriesQueryResponse{}, err
	}

	archived, err := h.archive.Recent(ctx, query.Limit())
	if err != nil {
		return GetReportEntriesQueryResponse{}, err
	}

	entries := make([]ReportEntryResponse, 0, len(archived))
	for _, a := range archived {
		entries = append(entries, ReportEntryResponse{
			ID:   a.ID.String(),
			Line: a.Entry.Line(),
		})
	}

	return GetReportEntriesQueryResponse{Total: total, Entries: entries}, nil
}
