package ports

import (
	"context"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Mutating workflows load the aggregate with GetForUpdate so the row is held
// under a write-intent lock for the rest of the transaction.
type OrderRepository interface {
	// Add persists a new order aggregate, including its requirement rows.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Requirement
	// rows are frozen after creation and are not touched by Update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but acquires a row-level
	// write lock, serializing concurrent lifecycle transitions on the
	// same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and its requirement rows.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAcceptedByEmployee retrieves the employee's current Accepted order.
	// Returns an ObjectNotFoundError when the employee holds none; used to
	// enforce the one-active-order-per-employee constraint.
	GetAcceptedByEmployee(ctx context.Context, employeeID kernel.UUID) (*order.Order, error)

	// ExistsNonTerminalWithMaterial reports whether any NotStarted or
	// Accepted order references the material in its requirements.
	ExistsNonTerminalWithMaterial(ctx context.Context, materialID kernel.UUID) (bool, error)

	// ExistsNonTerminalWithEmployee reports whether the employee is
	// attached to any order that is not yet Completed.
	ExistsNonTerminalWithEmployee(ctx context.Context, employeeID kernel.UUID) (bool, error)
}
