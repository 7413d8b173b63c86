package material_test

import (
	"testing"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/material"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterial(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid material", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "Oak Panel", "Main", "A-12", "pcs", 10)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(validID))
		assert.Equal(t, "Oak Panel", m.Name())
		assert.Equal(t, "Main", m.Warehouse())
		assert.Equal(t, "A-12", m.Location())
		assert.Equal(t, "pcs", m.Unit())
		assert.Equal(t, 10, m.Quantity())
	})

	t.Run("location and unit are optional", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "Oak Panel", "Main", "", "", 0)

		require.NoError(t, err)
		assert.Empty(t, m.Location())
		assert.Empty(t, m.Unit())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		m, err := material.NewMaterial(invalidID, "Oak Panel", "Main", "", "", 10)

		require.Error(t, err)
		assert.Nil(t, m)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "", "Main", "", "", 10)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with empty warehouse", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "Oak Panel", "", "", "", 10)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "warehouse")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "Oak Panel", "Main", "", "", -1)

		require.Error(t, err)
		assert.Nil(t, m)
	})

	t.Run("zero value material is invalid", func(t *testing.T) {
		var m material.Material
		require.ErrorIs(t, m.Validate(), material.ErrMaterialIsNotConstructed)
	})
}

func TestMaterial_Reserve(t *testing.T) {
	newMaterial := func(t *testing.T, quantity int) *material.Material {
		t.Helper()
		m, err := material.NewMaterial(kernel.NewUUID(), "Oak Panel", "Main", "", "pcs", quantity)
		require.NoError(t, err)
		return m
	}

	t.Run("reserves when stock is sufficient", func(t *testing.T) {
		m := newMaterial(t, 100)

		require.NoError(t, m.Reserve(20))

		assert.Equal(t, 80, m.Quantity())
	})

	t.Run("reserving the exact available quantity empties the stock", func(t *testing.T) {
		m := newMaterial(t, 20)

		require.NoError(t, m.Reserve(20))

		assert.Equal(t, 0, m.Quantity())
	})

	t.Run("fails with typed error and unchanged stock when insufficient", func(t *testing.T) {
		m := newMaterial(t, 10)

		err := m.Reserve(12)

		require.ErrorIs(t, err, material.ErrInsufficientStock)
		var stockErr *material.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Oak Panel", stockErr.MaterialName)
		assert.Equal(t, 12, stockErr.Requested)
		assert.Equal(t, 10, stockErr.Available)
		assert.Equal(t, 10, m.Quantity())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		m := newMaterial(t, 10)

		require.Error(t, m.Reserve(0))
		require.Error(t, m.Reserve(-5))
		assert.Equal(t, 10, m.Quantity())
	})

	t.Run("quantity never goes negative across sequences", func(t *testing.T) {
		m := newMaterial(t, 5)

		require.NoError(t, m.Reserve(3))
		require.Error(t, m.Reserve(3))
		require.NoError(t, m.Reserve(2))
		require.Error(t, m.Reserve(1))

		assert.Equal(t, 0, m.Quantity())
	})
}

func TestMaterial_Release(t *testing.T) {
	t.Run("release increments unconditionally", func(t *testing.T) {
		m, err := material.NewMaterial(kernel.NewUUID(), "Screw", "Main", "", "pcs", 0)
		require.NoError(t, err)

		require.NoError(t, m.Release(20))

		assert.Equal(t, 20, m.Quantity())
	})

	t.Run("reserve then release restores the original quantity", func(t *testing.T) {
		m, err := material.NewMaterial(kernel.NewUUID(), "Screw", "Main", "", "pcs", 100)
		require.NoError(t, err)

		require.NoError(t, m.Reserve(20))
		require.NoError(t, m.Release(20))

		assert.Equal(t, 100, m.Quantity())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		m, err := material.NewMaterial(kernel.NewUUID(), "Screw", "Main", "", "pcs", 10)
		require.NoError(t, err)

		require.Error(t, m.Release(0))
		require.Error(t, m.Release(-1))
		assert.Equal(t, 10, m.Quantity())
	})
}
