package commands

import (
	"context"

	"depot/internal/pkg/errs"
)

// CollectParcelCommandHandler releases a parcel to the customer named in the
// command.
type CollectParcelCommandHandler struct {
	collector ParcelCollector
}

// NewCollectParcelCommandHandler creates a new CollectParcelCommandHandler.
func NewCollectParcelCommandHandler(collector ParcelCollector) CollectParcelCommandHandler {
	return CollectParcelCommandHandler{collector: collector}
}

// Handle returns an errs.ObjectNotFoundError when the parcel is not in the
// depot. The failure has already been logged and reported by then.
func (h CollectParcelCommandHandler) Handle(ctx context.Context, cmd CollectParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.collector.CollectParcel(ctx, cmd.CustomerName(), cmd.ParcelID()) {
		return errs.NewObjectNotFoundError("parcel ID", cmd.ParcelID().String())
	}
	return nil
}
