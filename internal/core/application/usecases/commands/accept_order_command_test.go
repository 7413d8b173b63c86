package commands_test

import (
	"testing"

	"factoryops/internal/core/application/usecases/commands"
	"factoryops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	employeeID := kernel.NewUUID()

	cmd, err := commands.NewAcceptOrderCommand(orderID, employeeID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, employeeID, cmd.EmployeeID())
}

func TestNewAcceptOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAcceptOrderCommand_InvalidEmployeeID(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAcceptOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AcceptOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
}
