package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var (
	// ErrGetProcessedRecordsQueryIsNotConstructed is returned when the query was not built by NewGetProcessedRecordsQuery.
	ErrGetProcessedRecordsQueryIsNotConstructed = errors.New(
		"GetProcessedRecordsQuery must be created via NewGetProcessedRecordsQuery constructor",
	)
)

// GetProcessedRecordsQuery lists processed and collected parcels in the order
// they were released.
type GetProcessedRecordsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProcessedRecordsQuery creates a new GetProcessedRecordsQuery.
func NewGetProcessedRecordsQuery() GetProcessedRecordsQuery {
	return GetProcessedRecordsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProcessedRecordsQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessedRecordsQueryIsNotConstructed)
}

// GetProcessedRecordsQueryResponse holds the released parcels and their text listing.
type GetProcessedRecordsQueryResponse struct {
	Records []ProcessedRecordResponse
	Listing string
}

// ProcessedRecordResponse is the read model of one released parcel.
type ProcessedRecordResponse struct {
	ID           string
	Kind         string
	ParcelID     string
	CustomerName string
	Fee          float64
	Text         string
}
