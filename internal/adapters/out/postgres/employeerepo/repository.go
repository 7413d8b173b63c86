package employeerepo

import (
	"context"
	"errors"

	"factoryops/internal/adapters/out/postgres/conflict"
	"factoryops/internal/core/domain/model/employee"
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEmployeeRepository implements EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new employee to the database.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return conflict.Translate("add employee", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an employee by ID.
func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an employee by ID holding a row-level write lock
// until the transaction ends. Concurrent shift openings and order
// acceptances for the same employee serialize on this lock.
func (r *GormEmployeeRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	return r.get(ctx, id, true)
}

func (r *GormEmployeeRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*employee.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto EmployeeDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, conflict.Translate("get employee", err)
	}

	return toDomain(dto)
}

// Delete removes the employee.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&EmployeeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return conflict.Translate("delete employee", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", id.String())
	}

	return nil
}
