package commands_test

import (
	"testing"

	"depot/internal/core/application/depot"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessNextCustomerCommandHandler_Handle(t *testing.T) {
	alice, err := customer.NewCustomer(1, "Alice", kernel.MustNewParcelID("X1"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		result  depot.ProcessResult
		wantErr error
	}{
		{
			name:   "processed",
			result: depot.ProcessResult{Outcome: depot.Processed, Customer: alice},
		},
		{
			name:   "parcel not found is not an error",
			result: depot.ProcessResult{Outcome: depot.NotFound, Customer: alice},
		},
		{
			name:    "empty queue",
			result:  depot.ProcessResult{Outcome: depot.QueueEmpty},
			wantErr: commands.ErrQueueIsEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			mockDepot := new(MockDepot)
			mockDepot.On("ProcessNextCustomer", ctx).Return(tt.result).Once()

			got, err := commands.NewProcessNextCustomerCommandHandler(mockDepot).
				Handle(ctx, commands.NewProcessNextCustomerCommand())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.result.Outcome, got.Outcome)
			mockDepot.AssertExpectations(t)
		})
	}
}

func TestProcessNextCustomerCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockDepot := new(MockDepot)

	_, err := commands.NewProcessNextCustomerCommandHandler(mockDepot).
		Handle(t.Context(), commands.ProcessNextCustomerCommand{})

	require.ErrorIs(t, err, commands.ErrProcessNextCustomerCommandIsNotConstructed)
	mockDepot.AssertExpectations(t)
}
