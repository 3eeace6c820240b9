package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	// ErrAddParcelCommandIsNotConstructed is returned when the command was not built by NewAddParcelCommand.
	ErrAddParcelCommandIsNotConstructed = errors.New(
		"AddParcelCommand must be created via NewAddParcelCommand constructor",
	)
)

// AddParcelCommand stores a parcel, replacing any parcel with the same id.
// Dimensions are taken as given.
type AddParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.ParcelID
	length      float64
	width       float64
	height      float64
	weight      float64
	daysInDepot int

	guard guard.ConstructorGuard
}

// NewAddParcelCommand creates a validated command to store a parcel.
func NewAddParcelCommand(
	parcelID string,
	length, width, height, weight float64,
	daysInDepot int,
) (AddParcelCommand, error) {
	id, err := kernel.NewParcelID(parcelID)
	if err != nil {
		return AddParcelCommand{}, err
	}

	return AddParcelCommand{
		parcelID:    id,
		length:      length,
		width:       width,
		height:      height,
		weight:      weight,
		daysInDepot: daysInDepot,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddParcelCommand) Validate() error {
	return c.guard.Validate(ErrAddParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel's identifier.
func (c AddParcelCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}

// Length returns the parcel's length.
func (c AddParcelCommand) Length() float64 {
	return c.length
}

// Width returns the parcel's width.
func (c AddParcelCommand) Width() float64 {
	return c.width
}

// Height returns the parcel's height.
func (c AddParcelCommand) Height() float64 {
	return c.height
}

// Weight returns the parcel's weight.
func (c AddParcelCommand) Weight() float64 {
	return c.weight
}

// DaysInDepot returns how many days the parcel has been held.
func (c AddParcelCommand) DaysInDepot() int {
	return c.daysInDepot
}
