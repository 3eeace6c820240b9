package commands

import (
	"context"

	"depot/internal/core/domain/model/customer"
)

// AddCustomerCommandHandler queues the customer described by the command.
type AddCustomerCommandHandler struct {
	registrar CustomerRegistrar
}

// NewAddCustomerCommandHandler creates a new AddCustomerCommandHandler.
func NewAddCustomerCommandHandler(registrar CustomerRegistrar) AddCustomerCommandHandler {
	return AddCustomerCommandHandler{registrar: registrar}
}

// Handle returns the queued customer with its assigned sequence number.
func (h AddCustomerCommandHandler) Handle(ctx context.Context, cmd AddCustomerCommand) (customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return customer.Customer{}, err
	}

	return h.registrar.AddCustomer(ctx, cmd.Name(), cmd.ParcelID())
}
