package ports

import "depot/internal/core/domain/model/customer"

// CustomerQueue is the FIFO of customers waiting to be served.
type CustomerQueue interface {
	// Enqueue appends c to the tail.
	Enqueue(c customer.Customer)

	// Dequeue removes and returns the head. It returns false when the queue is empty.
	Dequeue() (customer.Customer, bool)

	Size() int
	IsEmpty() bool

	// Snapshot returns the queued customers head first without changing the queue.
	Snapshot() []customer.Customer
}
