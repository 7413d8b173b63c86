package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a request by an employee to take a production
// order into work. Acceptance reserves stock for every material requirement
// and assigns the employee in a single transaction.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(orderID, employeeID)
//	if err != nil {
//	    return fmt.Errorf("invalid acceptance data: %w", err)
//	}
//
//	handler := NewAcceptOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to accept order: %w", err)
//	}
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for an employee to accept an order.
// Validates that both identifiers are valid UUIDs.
func NewAcceptOrderCommand(orderID kernel.UUID, employeeID kernel.UUID) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setEmployeeID(employeeID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the identifier of the accepting employee.
func (c AcceptOrderCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}
