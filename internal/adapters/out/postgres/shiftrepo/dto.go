// Package shiftrepo provides data transfer objects and mapping functions for
// shift persistence.
package shiftrepo

import (
	"time"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/shift"

	"github.com/google/uuid"
)

// ShiftDTO represents the database structure for persisting shift aggregates.
// A NULL end time marks the shift as active; the composite index backs the
// active-shift-per-employee lookup and the stale-shift sweep.
type ShiftDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index:idx_shifts_employee_open"`
	StartTime  time.Time  `gorm:"not null"`
	EndTime    *time.Time `gorm:"index:idx_shifts_employee_open"`
}

// TableName specifies the database table name for shift entities.
func (ShiftDTO) TableName() string {
	return "shifts"
}

func fromDomain(aggregate *shift.Shift) ShiftDTO {
	return ShiftDTO{
		ID:         aggregate.ID().Bytes(),
		EmployeeID: aggregate.EmployeeID().Bytes(),
		StartTime:  aggregate.StartTime(),
		EndTime:    aggregate.EndTime(),
	}
}

func toDomain(dto ShiftDTO) (*shift.Shift, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	startTime := dto.StartTime.UTC()
	endTime := dto.EndTime
	if endTime != nil {
		utc := endTime.UTC()
		endTime = &utc
	}

	return shift.RestoreShift(id, employeeID, startTime, endTime)
}
