package ports

import (
	"context"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/material"
)

// MaterialRepository defines the persistence contract for material aggregates.
// Reservations and releases must load the row with GetForUpdate so the
// check-and-decrement is atomic under concurrent callers.
type MaterialRepository interface {
	// Add persists a new material aggregate.
	Add(ctx context.Context, aggregate *material.Material) error

	// Update persists changes to an existing material aggregate.
	Update(ctx context.Context, aggregate *material.Material) error

	// Get retrieves a material aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*material.Material, error)

	// GetForUpdate retrieves a material like Get but acquires a row-level
	// write lock. Callers locking several materials must do so in
	// ascending ID order to avoid deadlocks.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*material.Material, error)

	// Delete removes the material.
	Delete(ctx context.Context, id kernel.UUID) error
}
