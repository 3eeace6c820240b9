package queries

import "context"

// GetParcelsQueryHandler lists the parcels held in the depot.
type GetParcelsQueryHandler struct {
	reader ParcelReader
}

// NewGetParcelsQueryHandler creates a new GetParcelsQueryHandler.
func NewGetParcelsQueryHandler(reader ParcelReader) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{reader: reader}
}

// Handle returns the stored parcels in insertion order.
func (h GetParcelsQueryHandler) Handle(_ context.Context, query GetParcelsQuery) (GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelsQueryResponse{}, err
	}

	stored := h.reader.Parcels()
	parcels := make([]ParcelResponse, 0, len(stored))
	for _, p := range stored {
		parcels = append(parcels, newParcelResponse(p))
	}

	return GetParcelsQueryResponse{
		Parcels: parcels,
		Listing: h.reader.ParcelListing(),
	}, nil
}
