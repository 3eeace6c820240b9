package commands

import (
	"context"

	"depot/internal/core/domain/model/parcel"
)

// AddParcelCommandHandler builds the parcel described by the command and
// stores it.
type AddParcelCommandHandler struct {
	registrar ParcelRegistrar
}

// NewAddParcelCommandHandler creates a new AddParcelCommandHandler.
func NewAddParcelCommandHandler(registrar ParcelRegistrar) AddParcelCommandHandler {
	return AddParcelCommandHandler{registrar: registrar}
}

// Handle builds the parcel described by cmd and stores it, replacing any parcel with the same ID.
func (h AddParcelCommandHandler) Handle(ctx context.Context, cmd AddParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.Length(),
		cmd.Width(),
		cmd.Height(),
		cmd.Weight(),
		cmd.DaysInDepot(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.registrar.AddParcel(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
