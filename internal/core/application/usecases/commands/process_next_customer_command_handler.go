package commands

import (
	"context"

	"depot/internal/core/application/depot"
)

// ProcessNextCustomerCommandHandler runs one processing step.
type ProcessNextCustomerCommandHandler struct {
	processor QueueProcessor
}

// NewProcessNextCustomerCommandHandler creates a new ProcessNextCustomerCommandHandler.
func NewProcessNextCustomerCommandHandler(processor QueueProcessor) ProcessNextCustomerCommandHandler {
	return ProcessNextCustomerCommandHandler{processor: processor}
}

// Handle returns ErrQueueIsEmpty, together with the result, when nobody was
// waiting. A customer whose parcel is missing is a completed step: the result
// carries depot.NotFound and the error is nil.
func (h ProcessNextCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessNextCustomerCommand,
) (depot.ProcessResult, error) {
	if err := cmd.Validate(); err != nil {
		return depot.ProcessResult{}, err
	}

	result := h.processor.ProcessNextCustomer(ctx)
	if result.Outcome == depot.QueueEmpty {
		return result, ErrQueueIsEmpty
	}
	return result, nil
}
