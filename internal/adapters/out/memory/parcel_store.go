// Package memory provides the in-process ParcelStore and CustomerQueue used by
// the depot service. Neither type is safe for concurrent use; callers that share
// them across goroutines serialize access (see depot.Guarded).
package memory

import (
	"slices"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

// ParcelStore keeps parcels by identifier and remembers insertion order for listings.
// Replacing a parcel keeps its original position.
type ParcelStore struct {
	parcels map[string]*parcel.Parcel
	order   []string
}

// NewParcelStore creates an empty ParcelStore.
func NewParcelStore() *ParcelStore {
	return &ParcelStore{parcels: make(map[string]*parcel.Parcel)}
}

// Put stores p, replacing any parcel with the same ID.
func (s *ParcelStore) Put(p *parcel.Parcel) {
	key := p.ID().String()
	if _, ok := s.parcels[key]; !ok {
		s.order = append(s.order, key)
	}
	s.parcels[key] = p
}

// Get returns the parcel with the given ID, if stored.
func (s *ParcelStore) Get(id kernel.ParcelID) (*parcel.Parcel, bool) {
	p, ok := s.parcels[id.String()]
	return p, ok
}

// Contains reports whether a parcel with the given ID is stored.
func (s *ParcelStore) Contains(id kernel.ParcelID) bool {
	_, ok := s.parcels[id.String()]
	return ok
}

// Remove deletes the parcel with the given ID. Unknown IDs are ignored.
func (s *ParcelStore) Remove(id kernel.ParcelID) {
	key := id.String()
	if _, ok := s.parcels[key]; !ok {
		return
	}
	delete(s.parcels, key)
	if i := slices.Index(s.order, key); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// All returns the stored parcels in insertion order.
func (s *ParcelStore) All() []*parcel.Parcel {
	all := make([]*parcel.Parcel, 0, len(s.order))
	for _, key := range s.order {
		all = append(all, s.parcels[key])
	}
	return all
}

// Len returns the number of stored parcels.
func (s *ParcelStore) Len() int {
	return len(s.parcels)
}
