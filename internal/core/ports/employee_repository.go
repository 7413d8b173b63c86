package ports

import (
	"context"

	"factoryops/internal/core/domain/model/employee"
	"factoryops/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for employee aggregates.
type EmployeeRepository interface {
	// Add persists a new employee aggregate.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Get retrieves an employee aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// GetForUpdate retrieves an employee aggregate by its unique identifier
	// and locks its row for the remainder of the transaction. Handlers use
	// it to serialize per-employee read-check-write sections.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// Delete removes the employee.
	Delete(ctx context.Context, id kernel.UUID) error
}
