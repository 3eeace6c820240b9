package commands

import (
	"errors"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	// ErrCollectParcelCommandIsNotConstructed is returned when the command was not built by NewCollectParcelCommand.
	ErrCollectParcelCommandIsNotConstructed = errors.New(
		"CollectParcelCommand must be created via NewCollectParcelCommand constructor",
	)
)

// CollectParcelCommand is a walk-in customer collecting a parcel without
// queueing.
//
// Example:
//
//	cmd, err := NewCollectParcelCommand("Dave", "x100")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewCollectParcelCommandHandler(svc)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("collect parcel: %w", err)
//	}
type CollectParcelCommand struct { //nolint:recvcheck //using for validation
	customerName string
	parcelID     kernel.ParcelID

	guard guard.ConstructorGuard
}

// NewCollectParcelCommand validates the customer name and normalizes the
// parcel identifier.
func NewCollectParcelCommand(customerName, parcelID string) (CollectParcelCommand, error) {
	command := CollectParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerName(customerName),
		command.setParcelID(parcelID),
	); err != nil {
		return CollectParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CollectParcelCommand) Validate() error {
	return c.guard.Validate(ErrCollectParcelCommandIsNotConstructed)
}

// CustomerName returns the name of the collecting customer.
func (c CollectParcelCommand) CustomerName() string {
	return c.customerName
}

// ParcelID returns the parcel to collect.
func (c CollectParcelCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}

func (c *CollectParcelCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CollectParcelCommand) setParcelID(raw string) error {
	id, err := kernel.NewParcelID(raw)
	if err != nil {
		return err
	}

	c.parcelID = id
	return nil
}
