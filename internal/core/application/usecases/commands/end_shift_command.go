package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrEndShiftCommandIsNotConstructed = errors.New(
	"EndShiftCommand must be created via NewEndShiftCommand constructor",
)

// EndShiftCommand represents a request to close an open shift. Only the
// employee who started the shift may end it.
type EndShiftCommand struct { //nolint:recvcheck //using for validation
	shiftID    kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEndShiftCommand creates a command to close a shift.
// Validates that both identifiers are valid UUIDs.
func NewEndShiftCommand(shiftID kernel.UUID, employeeID kernel.UUID) (EndShiftCommand, error) {
	shiftCommand := EndShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shiftCommand.setShiftID(shiftID),
		shiftCommand.setEmployeeID(employeeID),
	); err != nil {
		return EndShiftCommand{}, err
	}

	return shiftCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EndShiftCommand) Validate() error {
	return c.guard.Validate(ErrEndShiftCommandIsNotConstructed)
}

// ShiftID returns the identifier of the shift to close.
func (c EndShiftCommand) ShiftID() kernel.UUID {
	return c.shiftID
}

// EmployeeID returns the identifier of the employee closing the shift.
func (c EndShiftCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *EndShiftCommand) setShiftID(shiftID kernel.UUID) error {
	if err := shiftID.Validate(); err != nil {
		return err
	}

	c.shiftID = shiftID
	return nil
}

func (c *EndShiftCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}
