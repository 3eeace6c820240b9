package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var (
	// ErrGetParcelsQueryIsNotConstructed is returned when the query was not built by NewGetParcelsQuery.
	ErrGetParcelsQueryIsNotConstructed = errors.New(
		"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
	)
)

// GetParcelsQuery lists the stored parcels in insertion order.
type GetParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a new GetParcelsQuery.
func NewGetParcelsQuery() GetParcelsQuery {
	return GetParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// GetParcelsQueryResponse holds the stored parcels and their text listing.
type GetParcelsQueryResponse struct {
	Parcels []ParcelResponse
	Listing string
}
