package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrStartShiftCommandIsNotConstructed = errors.New(
	"StartShiftCommand must be created via NewStartShiftCommand constructor",
)

// StartShiftCommand represents a request by an employee to open a work shift.
// An employee can have at most one active shift at a time.
type StartShiftCommand struct { //nolint:recvcheck //using for validation
	shiftID    kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartShiftCommand creates a command to open a shift for an employee.
// Validates that both identifiers are valid UUIDs.
func NewStartShiftCommand(shiftID kernel.UUID, employeeID kernel.UUID) (StartShiftCommand, error) {
	shiftCommand := StartShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shiftCommand.setShiftID(shiftID),
		shiftCommand.setEmployeeID(employeeID),
	); err != nil {
		return StartShiftCommand{}, err
	}

	return shiftCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartShiftCommand) Validate() error {
	return c.guard.Validate(ErrStartShiftCommandIsNotConstructed)
}

// ShiftID returns the identifier for the new shift.
func (c StartShiftCommand) ShiftID() kernel.UUID {
	return c.shiftID
}

// EmployeeID returns the identifier of the employee opening the shift.
func (c StartShiftCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *StartShiftCommand) setShiftID(shiftID kernel.UUID) error {
	if err := shiftID.Validate(); err != nil {
		return err
	}

	c.shiftID = shiftID
	return nil
}

func (c *StartShiftCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}
