package memory

import (
	"slices"

	"depot/internal/core/domain/model/customer"
)

// CustomerQueue is a slice-backed FIFO.
type CustomerQueue struct {
	items []customer.Customer
}

// NewCustomerQueue creates an empty CustomerQueue.
func NewCustomerQueue() *CustomerQueue {
	return &CustomerQueue{}
}

// Enqueue adds c to the tail of the queue.
func (q *CustomerQueue) Enqueue(c customer.Customer) {
	q.items = append(q.items, c)
}

// Dequeue removes and returns the head of the queue. ok is false when the queue is empty.
func (q *CustomerQueue) Dequeue() (customer.Customer, bool) {
	if len(q.items) == 0 {
		return customer.Customer{}, false
	}
	head := q.items[0]
	q.items[0] = customer.Customer{}
	q.items = q.items[1:]
	return head, true
}

// Size returns the number of queued customers.
func (q *CustomerQueue) Size() int {
	return len(q.items)
}

// IsEmpty reports whether no customer is queued.
func (q *CustomerQueue) IsEmpty() bool {
	return len(q.items) == 0
}

// Snapshot returns a copy of the queue, head first.
func (q *CustomerQueue) Snapshot() []customer.Customer {
	return slices.Clone(q.items)
}
