package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

// CreateEmployeeCommand represents a request to register a factory employee.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	firstName  string
	lastName   string
	role       string
	status     string

	guard guard.ConstructorGuard
}

// NewCreateEmployeeCommand creates a command to register an employee.
// Field validation beyond the ID is delegated to the employee aggregate.
func NewCreateEmployeeCommand(
	employeeID kernel.UUID,
	firstName string,
	lastName string,
	role string,
	status string,
) (CreateEmployeeCommand, error) {
	employeeCommand := CreateEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := employeeCommand.setEmployeeID(employeeID); err != nil {
		return CreateEmployeeCommand{}, err
	}

	employeeCommand.firstName = firstName
	employeeCommand.lastName = lastName
	employeeCommand.role = role
	employeeCommand.status = status

	return employeeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the unique identifier for the new employee.
func (c CreateEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// FirstName returns the employee's first name.
func (c CreateEmployeeCommand) FirstName() string {
	return c.firstName
}

// LastName returns the employee's last name.
func (c CreateEmployeeCommand) LastName() string {
	return c.lastName
}

// Role returns the employee's job role.
func (c CreateEmployeeCommand) Role() string {
	return c.role
}

// Status returns the employee's employment status.
func (c CreateEmployeeCommand) Status() string {
	return c.status
}

func (c *CreateEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}
