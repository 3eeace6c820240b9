package commands

import (
	"errors"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	// ErrAddCustomerCommandIsNotConstructed is returned when the command was not built by NewAddCustomerCommand.
	ErrAddCustomerCommandIsNotConstructed = errors.New(
		"AddCustomerCommand must be created via NewAddCustomerCommand constructor",
	)
)

// AddCustomerCommand appends a customer to the back of the queue. The parcel
// must already be in the depot when the command is handled.
//
// Example:
//
//	cmd, err := NewAddCustomerCommand("Eve", "C12")
//	if err != nil {
//	    return err
//	}
//	c, err := NewAddCustomerCommandHandler(svc).Handle(ctx, cmd)
type AddCustomerCommand struct { //nolint:recvcheck //using for validation
	name     string
	parcelID kernel.ParcelID

	guard guard.ConstructorGuard
}

// NewAddCustomerCommand creates a validated command to queue a customer for parcelID.
func NewAddCustomerCommand(name, parcelID string) (AddCustomerCommand, error) {
	command := AddCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setParcelID(parcelID),
	); err != nil {
		return AddCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCustomerCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomerCommandIsNotConstructed)
}

// Name returns the customer's name.
func (c AddCustomerCommand) Name() string {
	return c.name
}

// ParcelID returns the parcel the customer wants.
func (c AddCustomerCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}

func (c *AddCustomerCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddCustomerCommand) setParcelID(raw string) error {
	id, err := kernel.NewParcelID(raw)
	if err != nil {
		return err
	}

	c.parcelID = id
	return nil
}
