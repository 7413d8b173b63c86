package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrDeleteEmployeeCommandIsNotConstructed = errors.New(
	"DeleteEmployeeCommand must be created via NewDeleteEmployeeCommand constructor",
)

// DeleteEmployeeCommand represents a request to remove an employee. Rejected
// while the employee is attached to any unfinished order.
type DeleteEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteEmployeeCommand creates a command to remove an employee.
// Validates that the employee ID is a valid UUID.
func NewDeleteEmployeeCommand(employeeID kernel.UUID) (DeleteEmployeeCommand, error) {
	deleteCommand := DeleteEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setEmployeeID(employeeID); err != nil {
		return DeleteEmployeeCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the identifier of the employee to remove.
func (c DeleteEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *DeleteEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}
