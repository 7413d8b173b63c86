// Package employee provides the Employee aggregate. Employees are the actors
// of the system: they accept and finish orders and work shifts. The
// one-active-order and one-active-shift constraints are derived by repository
// queries, not stored here.
package employee

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/errs"
)

// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
// created through the NewEmployee factory method.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

// Employee represents a factory worker.
type Employee struct {
	id        kernel.UUID
	firstName string
	lastName  string
	role      string
	status    string

	isConstructed bool
}

// NewEmployee creates a validated Employee. First name, last name and role
// are required; status is free-form and optional.
func NewEmployee(id kernel.UUID, firstName, lastName, role, status string) (*Employee, error) {
	e := &Employee{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setFirstName(firstName),
		e.setLastName(lastName),
		e.setRole(role),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEmployee reconstructs an Employee from persistence.
func RestoreEmployee(id kernel.UUID, firstName, lastName, role, status string) (*Employee, error) {
	return NewEmployee(id, firstName, lastName, role, status)
}

// Validate ensures the Employee instance was properly constructed.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// IsEqual compares two employees by their unique identifiers.
func (e *Employee) IsEqual(other *Employee) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// FirstName returns the employee's first name.
func (e *Employee) FirstName() string {
	return e.firstName
}

// LastName returns the employee's last name.
func (e *Employee) LastName() string {
	return e.lastName
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.firstName + " " + e.lastName
}

// Role returns the employee's role.
func (e *Employee) Role() string {
	return e.role
}

// Status returns the employee's status.
func (e *Employee) Status() string {
	return e.status
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	e.firstName = firstName
	return nil
}

func (e *Employee) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	e.lastName = lastName
	return nil
}

func (e *Employee) setRole(role string) error {
	if role == "" {
		return errs.NewValueIsRequiredError("role")
	}
	e.role = role
	return nil
}
