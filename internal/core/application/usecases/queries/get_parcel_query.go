package queries

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	// ErrGetParcelQueryIsNotConstructed is returned when the query was not built by NewGetParcelQuery.
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)
)

// GetParcelQuery looks up one stored parcel and quotes its fee.
type GetParcelQuery struct {
	parcelID kernel.ParcelID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for the parcel with the given raw ID.
func NewGetParcelQuery(parcelID string) (GetParcelQuery, error) {
	id, err := kernel.NewParcelID(parcelID)
	if err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{parcelID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the parcel to look up.
func (q GetParcelQuery) ParcelID() kernel.ParcelID {
	return q.parcelID
}

// GetParcelQueryResponse is a parcel with the fee it would cost to release now.
type GetParcelQueryResponse struct {
	Parcel     ParcelResponse
	Fee        float64
	Discounted bool
	WellFormed bool
}
