// Package queries contains the read-only projections of depot state.
// Query handlers never change the queue, the store or the processed records.
package queries

import (
	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/domain/model/record"
)

// The depot views the handlers read from. depot.Service and depot.Guarded
// implement all of them.
type (
	QueueReader interface {
		PendingCustomers() []customer.Customer
		CustomerListing() string
	}

	ParcelReader interface {
		Parcels() []*parcel.Parcel
		ParcelListing() string
		Parcel(id kernel.ParcelID) (*parcel.Parcel, bool)
		QuoteFee(id kernel.ParcelID) (float64, error)
	}

	ProcessedReader interface {
		ProcessedRecords() []record.ProcessedRecord
		ProcessedListing() string
	}
)

// ParcelResponse is the read model of a stored parcel.
type ParcelResponse struct {
	ID          string
	Length      float64
	Width       float64
	Height      float64
	Weight      float64
	DaysInDepot int
	Display     string
}

func newParcelResponse(p *parcel.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:          p.ID().String(),
		Length:      p.Length(),
		Width:       p.Width(),
		Height:      p.Height(),
		Weight:      p.Weight(),
		DaysInDepot: p.DaysInDepot(),
		Display:     p.DisplayString(),
	}
}
