package queries

import (
	"context"

	"depot/internal/pkg/errs"
)

// GetParcelQueryHandler looks up a stored parcel and quotes its fee.
type GetParcelQueryHandler struct {
	reader ParcelReader
}

// NewGetParcelQueryHandler creates a new GetParcelQueryHandler.
func NewGetParcelQueryHandler(reader ParcelReader) GetParcelQueryHandler {
	return GetParcelQueryHandler{reader: reader}
}

// Handle returns an errs.ObjectNotFoundError when the parcel is not stored.
func (h GetParcelQueryHandler) Handle(_ context.Context, query GetParcelQuery) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	p, found := h.reader.Parcel(query.ParcelID())
	if !found {
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("parcel ID", query.ParcelID().String())
	}

	fee, err := h.reader.QuoteFee(query.ParcelID())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	return GetParcelQueryResponse{
		Parcel:     newParcelResponse(p),
		Fee:        fee,
		Discounted: p.ID().IsDiscounted(),
		WellFormed: p.ID().IsWellFormed(),
	}, nil
}
