package commands

import (
	"errors"

	"depot/internal/pkg/guard"
)

var (
	// ErrProcessNextCustomerCommandIsNotConstructed is returned when the command was not built by NewProcessNextCustomerCommand.
	ErrProcessNextCustomerCommandIsNotConstructed = errors.New(
		"ProcessNextCustomerCommand must be created via NewProcessNextCustomerCommand constructor",
	)
)

// ProcessNextCustomerCommand serves the customer at the head of the queue.
//
// Example:
//
//	cmd := NewProcessNextCustomerCommand()
//	handler := NewProcessNextCustomerCommandHandler(svc)
//
//	for {
//	    if _, err := handler.Handle(ctx, cmd); errors.Is(err, ErrQueueIsEmpty) {
//	        break
//	    }
//	}
type ProcessNextCustomerCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessNextCustomerCommand creates a command to serve the head of the queue.
func NewProcessNextCustomerCommand() ProcessNextCustomerCommand {
	return ProcessNextCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ProcessNextCustomerCommand) Validate() error {
	return c.guard.Validate(ErrProcessNextCustomerCommandIsNotConstructed)
}
