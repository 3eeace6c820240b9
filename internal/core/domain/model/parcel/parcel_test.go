package parcel_test

import (
	"testing"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParcel(t *testing.T) {
	id := kernel.MustNewParcelID("c200")

	t.Run("should create parcel with all attributes", func(t *testing.T) {
		p, err := parcel.NewParcel(id, 2, 3, 4, 5, 10)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "C200", p.ID().String())
		assert.InDelta(t, 2.0, p.Length(), 1e-9)
		assert.InDelta(t, 3.0, p.Width(), 1e-9)
		assert.InDelta(t, 4.0, p.Height(), 1e-9)
		assert.InDelta(t, 5.0, p.Weight(), 1e-9)
		assert.Equal(t, 10, p.DaysInDepot())
		assert.False(t, p.Collected())
	})

	t.Run("should fail with zero value identifier", func(t *testing.T) {
		var zero kernel.ParcelID

		p, err := parcel.NewParcel(zero, 1, 1, 1, 1, 0)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "ParcelID must be created")
	})

	t.Run("should accept zero and negative measurements", func(t *testing.T) {
		p, err := parcel.NewParcel(id, 0, -1, 2, 0, 0)

		require.NoError(t, err)
		assert.InDelta(t, -1.0, p.Width(), 1e-9)
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var p parcel.Parcel
		assert.Equal(t, parcel.ErrParcelIsNotConstructed, p.Validate())
	})

	t.Run("nil pointer is not constructed", func(t *testing.T) {
		var p *parcel.Parcel
		assert.Equal(t, parcel.ErrParcelIsNotConstructed, p.Validate())
	})
}

func TestParcel_Strings(t *testing.T) {
	p, err := parcel.NewParcel(kernel.MustNewParcelID("X100"), 2.5, 3, 4, 1.25, 3)
	require.NoError(t, err)

	assert.Equal(t,
		"Parcel{ID='X100', dim=2.5x3x4, weight=1.25, daysInDepot=3, collected=false}",
		p.String())
	assert.Equal(t,
		"Parcel{ID='X100', LxWxH=2.5x3x4, weight=1.25, days=3}",
		p.DisplayString())
	assert.NotContains(t, p.DisplayString(), "collected")
}
