package commands

import "errors"

var (
	// ErrCustomerNameIsRequired is returned when a command carries a blank customer name.
	ErrCustomerNameIsRequired = errors.New("customer name is required")

	// ErrQueueIsEmpty is returned when there is no customer to process.
	ErrQueueIsEmpty = errors.New("no customer left in queue")
)
