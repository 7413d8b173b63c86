// Package employeerepo provides data transfer objects and mapping functions
// for employee persistence.
package employeerepo

import (
	"factoryops/internal/core/domain/model/employee"
	"factoryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO represents the database structure for persisting employee
// aggregates.
type EmployeeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(aggregate *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Role:      aggregate.Role(),
		Status:    aggregate.Status(),
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return employee.RestoreEmployee(id, dto.FirstName, dto.LastName, dto.Role, dto.Status)
}
