package commands_test

import (
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectParcelCommand(t *testing.T) {
	t.Run("normalizes input", func(t *testing.T) {
		cmd, err := commands.NewCollectParcelCommand("  Dave ", " x100")

		require.NoError(t, err)
		assert.Equal(t, "Dave", cmd.CustomerName())
		assert.Equal(t, "X100", cmd.ParcelID().String())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("collects every validation error", func(t *testing.T) {
		_, err := commands.NewCollectParcelCommand(" ", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CollectParcelCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCollectParcelCommandIsNotConstructed)
	})
}
