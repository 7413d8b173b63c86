package queries

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrGetAllEmployeesQueryIsNotConstructed = errors.New(
	"GetAllEmployeesQuery must be created via NewGetAllEmployeesQuery constructor",
)

// GetAllEmployeesQuery retrieves the employee roster.
type GetAllEmployeesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllEmployeesQuery creates a query to retrieve all employees.
// This is a parameterless query.
func NewGetAllEmployeesQuery() GetAllEmployeesQuery {
	return GetAllEmployeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllEmployeesQueryIsNotConstructed)
}

// GetAllEmployeesQueryResponse represents one employee row in the roster.
type GetAllEmployeesQueryResponse struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Role      string
	Status    string
}
