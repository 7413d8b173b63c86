package ports

import (
	"context"
	"time"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/shift"
)

// ShiftRepository defines the persistence contract for shift aggregates.
type ShiftRepository interface {
	// Add persists a new shift aggregate.
	Add(ctx context.Context, aggregate *shift.Shift) error

	// Update persists changes to an existing shift aggregate.
	Update(ctx context.Context, aggregate *shift.Shift) error

	// Get retrieves a shift aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shift.Shift, error)

	// GetActiveByEmployee retrieves the employee's shift with no end time.
	// Returns an ObjectNotFoundError when the employee has no active shift;
	// used to enforce the one-active-shift-per-employee constraint.
	GetActiveByEmployee(ctx context.Context, employeeID kernel.UUID) (*shift.Shift, error)

	// GetActiveStartedBefore retrieves all active shifts whose start time
	// precedes the cutoff. Used by the stale-shift job.
	GetActiveStartedBefore(ctx context.Context, cutoff time.Time) ([]*shift.Shift, error)
}
