// Package ports defines the contracts between the depot service and its
// collaborators: the parcel table, the customer queue, the event log, the
// report sink and metrics. Adapters under internal/adapters implement them.
package ports

import (
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

// ParcelStore is the key-value table of parcels held in the depot.
// Identifiers are normalized by kernel.ParcelID before they reach the store.
type ParcelStore interface {
	// Put inserts p, replacing any parcel with the same identifier.
	Put(p *parcel.Parcel)

	// Get returns the parcel with the given identifier, or false when absent.
	Get(id kernel.ParcelID) (*parcel.Parcel, bool)

	// Contains reports whether a parcel with the given identifier is stored.
	Contains(id kernel.ParcelID) bool

	// Remove deletes the parcel if present. Removing an absent parcel is a no-op.
	Remove(id kernel.ParcelID)

	// All returns a snapshot of the stored parcels in insertion order.
	All() []*parcel.Parcel

	// Len returns the number of stored parcels.
	Len() int
}
