package commands_test

import (
	"context"

	"depot/internal/core/application/depot"
	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
)

// MockDepot implements every capability the handlers depend on.
type MockDepot struct {
	mock.Mock
}

func (m *MockDepot) ProcessNextCustomer(ctx context.Context) depot.ProcessResult {
	args := m.Called(ctx)
	return args.Get(0).(depot.ProcessResult)
}

func (m *MockDepot) CollectParcel(ctx context.Context, customerName string, id kernel.ParcelID) bool {
	args := m.Called(ctx, customerName, id)
	return args.Bool(0)
}

func (m *MockDepot) AddCustomer(ctx context.Context, name string, id kernel.ParcelID) (customer.Customer, error) {
	args := m.Called(ctx, name, id)
	return args.Get(0).(customer.Customer), args.Error(1)
}

func (m *MockDepot) AddParcel(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
