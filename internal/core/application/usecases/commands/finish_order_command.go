package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand represents a request to mark an accepted order as
// completed. Only the employee who accepted the order may finish it.
// Reserved stock stays consumed: the materials went into the product.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishOrderCommand creates a command to complete an order.
// Validates that both identifiers are valid UUIDs.
func NewFinishOrderCommand(orderID kernel.UUID, employeeID kernel.UUID) (FinishOrderCommand, error) {
	finishCommand := FinishOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		finishCommand.setOrderID(orderID),
		finishCommand.setEmployeeID(employeeID),
	); err != nil {
		return FinishOrderCommand{}, err
	}

	return finishCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c FinishOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the identifier of the employee finishing the order.
func (c FinishOrderCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *FinishOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FinishOrderCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}
