package queries

import "context"

// GetPendingCustomersQueryHandler lists the customers waiting in the queue.
type GetPendingCustomersQueryHandler struct {
	reader QueueReader
}

// NewGetPendingCustomersQueryHandler creates a new GetPendingCustomersQueryHandler.
func NewGetPendingCustomersQueryHandler(reader QueueReader) GetPendingCustomersQueryHandler {
	return GetPendingCustomersQueryHandler{reader: reader}
}

// Handle returns the queued customers in service order.
func (h GetPendingCustomersQueryHandler) Handle(
	_ context.Context,
	query GetPendingCustomersQuery,
) (GetPendingCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingCustomersQueryResponse{}, err
	}

	pending := h.reader.PendingCustomers()
	customers := make([]PendingCustomer, 0, len(pending))
	for _, c := range pending {
		customers = append(customers, PendingCustomer{
			Seq:      c.Seq(),
			Name:     c.Name(),
			ParcelID: c.ParcelID().String(),
		})
	}

	return GetPendingCustomersQueryResponse{
		Customers: customers,
		Listing:   h.reader.CustomerListing(),
	}, nil
}
