package depot

import (
	"context"
	"sync"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/domain/model/record"
)

// Guarded serializes every call into a Service, so a single depot can be
// driven from HTTP handlers and the scheduled job at once.
type Guarded struct {
	mu  sync.Mutex
	svc *Service
}

// NewGuarded wraps svc. svc must not be used directly afterwards.
func NewGuarded(svc *Service) *Guarded {
	return &Guarded{svc: svc}
}

// LoadCustomers calls Service.LoadCustomers under the lock.
func (g *Guarded) LoadCustomers(ctx context.Context, path string) (LoadResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.LoadCustomers(ctx, path)
}

// LoadParcels calls Service.LoadParcels under the lock.
func (g *Guarded) LoadParcels(ctx context.Context, path string) (LoadResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.LoadParcels(ctx, path)
}

// ProcessNextCustomer calls Service.ProcessNextCustomer under the lock.
func (g *Guarded) ProcessNextCustomer(ctx context.Context) ProcessResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.ProcessNextCustomer(ctx)
}

// ProcessNextIfQueued processes the head customer only when the queue is not
// empty, checking and dequeuing under one lock. ok is false when nothing was
// queued; no log or report entry is written in that case.
func (g *Guarded) ProcessNextIfQueued(ctx context.Context) (result ProcessResult, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.svc.IsQueueEmpty() {
		return ProcessResult{Outcome: QueueEmpty}, false
	}
	return g.svc.ProcessNextCustomer(ctx), true
}

// CollectParcel calls Service.CollectParcel under the lock.
func (g *Guarded) CollectParcel(ctx context.Context, customerName string, id kernel.ParcelID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.CollectParcel(ctx, customerName, id)
}

// AddCustomer calls Service.AddCustomer under the lock.
func (g *Guarded) AddCustomer(ctx context.Context, name string, id kernel.ParcelID) (customer.Customer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.AddCustomer(ctx, name, id)
}

// AddParcel calls Service.AddParcel under the lock.
func (g *Guarded) AddParcel(ctx context.Context, p *parcel.Parcel) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.AddParcel(ctx, p)
}

// Parcel calls Service.Parcel under the lock.
func (g *Guarded) Parcel(id kernel.ParcelID) (*parcel.Parcel, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.Parcel(id)
}

// QuoteFee calls Service.QuoteFee under the lock.
func (g *Guarded) QuoteFee(id kernel.ParcelID) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.QuoteFee(id)
}

// IsQueueEmpty calls Service.IsQueueEmpty under the lock.
func (g *Guarded) IsQueueEmpty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.IsQueueEmpty()
}

// QueueSize calls Service.QueueSize under the lock.
func (g *Guarded) QueueSize() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.QueueSize()
}

// PendingCustomers returns a copy of the queue taken under the lock.
func (g *Guarded) PendingCustomers() []customer.Customer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.PendingCustomers()
}

// Parcels returns a copy of the stored parcels taken under the lock.
func (g *Guarded) Parcels() []*parcel.Parcel {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.Parcels()
}

// ProcessedRecords returns a copy of the released records taken under the lock.
func (g *Guarded) ProcessedRecords() []record.ProcessedRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.ProcessedRecords()
}

// CustomerListing calls Service.CustomerListing under the lock.
func (g *Guarded) CustomerListing() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.CustomerListing()
}

// ParcelListing calls Service.ParcelListing under the lock.
func (g *Guarded) ParcelListing() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.ParcelListing()
}

// ProcessedListing calls Service.ProcessedListing under the lock.
func (g *Guarded) ProcessedListing() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.svc.ProcessedListing()
}
