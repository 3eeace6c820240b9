package queries

import "context"

// GetProcessedRecordsQueryHandler lists every processed and collected parcel.
type GetProcessedRecordsQueryHandler struct {
	reader ProcessedReader
}

// NewGetProcessedRecordsQueryHandler creates a new GetProcessedRecordsQueryHandler.
func NewGetProcessedRecordsQueryHandler(reader ProcessedReader) GetProcessedRecordsQueryHandler {
	return GetProcessedRecordsQueryHandler{reader: reader}
}

// Handle returns the released parcels in the order they left the depot.
func (h GetProcessedRecordsQueryHandler) Handle(
	_ context.Context,
	query GetProcessedRecordsQuery,
) (GetProcessedRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProcessedRecordsQueryResponse{}, err
	}

	processed := h.reader.ProcessedRecords()
	records := make([]ProcessedRecordResponse, 0, len(processed))
	for _, rec := range processed {
		records = append(records, ProcessedRecordResponse{
			ID:           rec.ID().String(),
			Kind:         rec.Kind().String(),
			ParcelID:     rec.ParcelID().String(),
			CustomerName: rec.CustomerName(),
			Fee:          rec.Fee(),
			Text:         rec.Text(),
		})
	}

	return GetProcessedRecordsQueryResponse{
		Records: records,
		Listing: h.reader.ProcessedListing(),
	}, nil
}
