// Package commands contains the user actions that change depot state.
// Every command is validated on construction, and every handler calls exactly
// one depot operation.
package commands

import (
	"context"

	"depot/internal/core/application/depot"
	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

// The depot capabilities the handlers depend on. depot.Service and
// depot.Guarded implement all of them.
type (
	// QueueProcessor serves the customer at the head of the queue.
	QueueProcessor interface {
		ProcessNextCustomer(ctx context.Context) depot.ProcessResult
	}

	// ParcelCollector releases a parcel to a walk-in customer.
	ParcelCollector interface {
		CollectParcel(ctx context.Context, customerName string, id kernel.ParcelID) bool
	}

	// CustomerRegistrar queues a new customer.
	CustomerRegistrar interface {
		AddCustomer(ctx context.Context, name string, id kernel.ParcelID) (customer.Customer, error)
	}

	// ParcelRegistrar stores a new or replacement parcel.
	ParcelRegistrar interface {
		AddParcel(ctx context.Context, p *parcel.Parcel) error
	}
)
