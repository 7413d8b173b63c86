package order_test

import (
	"testing"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequirements(t *testing.T) []order.Requirement {
	t.Helper()
	req, err := order.NewRequirement(kernel.NewUUID(), 3)
	require.NoError(t, err)
	return []order.Requirement{req}
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		reqs := validRequirements(t)

		o, err := order.NewOrder(validID, "Oak Table", 4, reqs)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "Oak Table", o.ProductName())
		assert.Equal(t, 4, o.Quantity())
		assert.Equal(t, order.NotStarted, o.Status())
		assert.Nil(t, o.Employee())
		assert.Len(t, o.Requirements(), 1)
	})

	t.Run("should create order without requirements", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Oak Table", 4, nil)

		require.NoError(t, err)
		assert.Empty(t, o.Requirements())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "Oak Table", 4, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", 4, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "productName")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Oak Table", 0, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Oak Table", -5, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "-5 is not greater than 0")
	})

	t.Run("should fail with unconstructed requirement", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Oak Table", 4, []order.Requirement{{}})

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrRequirementIsNotConstructed)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Oak Table", 4, nil)
		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("accept from NotStarted assigns employee and changes status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Oak Table", 4, validRequirements(t))
		require.NoError(t, err)
		employeeID := kernel.NewUUID()

		require.NoError(t, o.Accept(employeeID))

		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.Employee())
		assert.True(t, o.Employee().IsEqual(employeeID))
	})

	t.Run("double accept fails with ErrAlreadyAssigned", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Oak Table", 4, nil)
		first := kernel.NewUUID()
		require.NoError(t, o.Accept(first))

		err := o.Accept(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.True(t, o.Employee().IsEqual(first))
	})

	t.Run("accept on completed order fails with ErrAlreadyCompleted", func(t *testing.T) {
		employeeID := kernel.NewUUID()
		o, err := order.RestoreOrder(kernel.NewUUID(), "Oak Table", 4, order.Completed, &employeeID, nil)
		require.NoError(t, err)

		err = o.Accept(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrAlreadyCompleted)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("accept with invalid employee ID fails", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Oak Table", 4, nil)
		var invalidID kernel.UUID

		err := o.Accept(invalidID)

		require.Error(t, err)
		assert.Equal(t, order.NotStarted, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("assigned employee can complete accepted order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Oak Table", 4, nil)
		employeeID := kernel.NewUUID()
		require.NoError(t, o.Accept(employeeID))

		require.NoError(t, o.Complete(employeeID))

		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("completing a NotStarted order fails with ErrNotYetAccepted", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Oak Table", 4, nil)

		err := o.Complete(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrNotYetAccepted)
		assert.Equal(t, order.NotStarted, o.Status())
	})

	t.Run("completing twice fails with ErrAlreadyCompleted", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Oak Table", 4, nil)
		employeeID := kernel.NewUUID()
		require.NoError(t, o.Accept(employeeID))
		require.NoError(t, o.Complete(employeeID))

		err := o.Complete(employeeID)

		require.ErrorIs(t, err, order.ErrAlreadyCompleted)
	})

	t.Run("different employee cannot complete the order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Oak Table", 4, nil)
		require.NoError(t, o.Accept(kernel.NewUUID()))

		err := o.Complete(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrNotAssignedEmployee)
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores accepted order with employee", func(t *testing.T) {
		id := kernel.NewUUID()
		employeeID := kernel.NewUUID()
		reqs := validRequirements(t)

		o, err := order.RestoreOrder(id, "Oak Table", 4, order.Accepted, &employeeID, reqs)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.Employee().IsEqual(employeeID))
	})

	t.Run("rejects NotStarted order with employee", func(t *testing.T) {
		employeeID := kernel.NewUUID()

		o, err := order.RestoreOrder(kernel.NewUUID(), "Oak Table", 4, order.NotStarted, &employeeID, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("rejects Accepted order without employee", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "Oak Table", 4, order.Accepted, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "Oak Table", 4, order.Unknown, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestRequirement(t *testing.T) {
	t.Run("TotalFor multiplies per-unit quantity by order quantity", func(t *testing.T) {
		req, err := order.NewRequirement(kernel.NewUUID(), 3)
		require.NoError(t, err)

		assert.Equal(t, 12, req.TotalFor(4))
	})

	t.Run("rejects non-positive per-unit quantity", func(t *testing.T) {
		_, err := order.NewRequirement(kernel.NewUUID(), 0)
		require.Error(t, err)

		_, err = order.NewRequirement(kernel.NewUUID(), -1)
		require.Error(t, err)
	})

	t.Run("rejects invalid material ID", func(t *testing.T) {
		var invalidID kernel.UUID
		_, err := order.NewRequirement(invalidID, 1)
		require.Error(t, err)
	})
}
