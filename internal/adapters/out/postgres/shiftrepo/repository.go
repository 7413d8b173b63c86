package shiftrepo

import (
	"context"
	"errors"
	"time"

	"factoryops/internal/adapters/out/postgres/conflict"
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/shift"
	"factoryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShiftRepository implements ShiftRepository using GORM.
type GormShiftRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShiftRepository creates a new GORM shift repository.
func NewGormShiftRepository(db *gorm.DB, tracker aggregateTracker) *GormShiftRepository {
	return &GormShiftRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shift to the database.
func (r *GormShiftRepository) Add(ctx context.Context, aggregate *shift.Shift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return conflict.Translate("add shift", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shift to the database.
func (r *GormShiftRepository) Update(ctx context.Context, aggregate *shift.Shift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShiftDTO{}).
		Where("id = ?", dto.ID).
		Select("EmployeeID", "StartTime", "EndTime").
		Updates(&dto)
	if result.Error != nil {
		return conflict.Translate("update shift", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shift by ID.
func (r *GormShiftRepository) Get(ctx context.Context, id kernel.UUID) (*shift.Shift, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShiftDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shift", id.String())
		}
		return nil, conflict.Translate("get shift", err)
	}

	return toDomain(dto)
}

// GetActiveByEmployee retrieves the employee's shift with no end time.
func (r *GormShiftRepository) GetActiveByEmployee(ctx context.Context, employeeID kernel.UUID) (*shift.Shift, error) {
	if err := employeeID.Validate(); err != nil {
		return nil, err
	}

	var dto ShiftDTO
	err := r.db.WithContext(ctx).
		First(&dto, "employee_id = ? AND end_time IS NULL", employeeID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active shift for employee", employeeID.String())
		}
		return nil, conflict.Translate("get active shift", err)
	}

	return toDomain(dto)
}

// GetActiveStartedBefore retrieves all active shifts that started before the
// cutoff, ordered by start time.
func (r *GormShiftRepository) GetActiveStartedBefore(ctx context.Context, cutoff time.Time) ([]*shift.Shift, error) {
	var dtos []ShiftDTO
	err := r.db.WithContext(ctx).
		Order("start_time").
		Find(&dtos, "end_time IS NULL AND start_time < ?", cutoff).Error
	if err != nil {
		return nil, conflict.Translate("get stale shifts", err)
	}

	shifts := make([]*shift.Shift, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}
