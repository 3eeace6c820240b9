package commands_test

import (
	"errors"
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddParcelCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAddParcelCommand("X7", 1, 2, 3, 4, 5)
	require.NoError(t, err)

	mockDepot := new(MockDepot)
	mockDepot.On("AddParcel", ctx, mock.MatchedBy(func(p *parcel.Parcel) bool {
		return p.ID().String() == "X7" && p.DaysInDepot() == 5
	})).Return(nil).Once()

	// Act
	p, err := commands.NewAddParcelCommandHandler(mockDepot).Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.InDelta(t, 4.0, p.Weight(), 1e-9)
	mockDepot.AssertExpectations(t)
}

func TestAddParcelCommandHandler_Handle_DepotError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddParcelCommand("X7", 1, 2, 3, 4, 5)
	require.NoError(t, err)

	expectedError := errors.New("store unavailable")
	mockDepot := new(MockDepot)
	mockDepot.On("AddParcel", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(expectedError).Once()

	p, err := commands.NewAddParcelCommandHandler(mockDepot).Handle(ctx, cmd)

	assert.Nil(t, p)
	assert.Equal(t, expectedError, err)
	mockDepot.AssertExpectations(t)
}

func TestAddParcelCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockDepot := new(MockDepot)

	_, err := commands.NewAddParcelCommandHandler(mockDepot).Handle(t.Context(), commands.AddParcelCommand{})

	require.ErrorIs(t, err, commands.ErrAddParcelCommandIsNotConstructed)
	mockDepot.AssertExpectations(t)
}
