package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var (
	// ErrGetPendingCustomersQueryIsNotConstructed is returned when the query was not built by NewGetPendingCustomersQuery.
	ErrGetPendingCustomersQueryIsNotConstructed = errors.New(
		"GetPendingCustomersQuery must be created via NewGetPendingCustomersQuery constructor",
	)
)

// GetPendingCustomersQuery lists the queued customers, head first.
//
// Example:
//
//	handler := NewGetPendingCustomersQueryHandler(svc)
//	resp, err := handler.Handle(ctx, NewGetPendingCustomersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Print(resp.Listing)
type GetPendingCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingCustomersQuery creates a new GetPendingCustomersQuery.
func NewGetPendingCustomersQuery() GetPendingCustomersQuery {
	return GetPendingCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCustomersQueryIsNotConstructed)
}

// GetPendingCustomersQueryResponse holds the queue in structured and listing
// form. Listing is the placeholder text when the queue is empty.
type GetPendingCustomersQueryResponse struct {
	Customers []PendingCustomer
	Listing   string
}

// PendingCustomer is the read model of a queued customer.
type PendingCustomer struct {
	Seq      int
	Name     string
	ParcelID string
}
