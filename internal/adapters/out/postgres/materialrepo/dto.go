// Package materialrepo provides data transfer objects and mapping functions
// for material persistence.
package materialrepo

import (
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/material"

	"github.com/google/uuid"
)

// MaterialDTO represents the database structure for persisting material
// aggregates. Quantity carries a check constraint as a second line of
// defense behind the aggregate's own invariant.
type MaterialDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Warehouse string    `gorm:"type:varchar(255);not null"`
	Location  string    `gorm:"type:varchar(255)"`
	Unit      string    `gorm:"type:varchar(64)"`
	Quantity  int       `gorm:"type:int;not null;check:quantity >= 0"`
}

// TableName specifies the database table name for material entities.
func (MaterialDTO) TableName() string {
	return "materials"
}

func fromDomain(aggregate *material.Material) MaterialDTO {
	return MaterialDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Warehouse: aggregate.Warehouse(),
		Location:  aggregate.Location(),
		Unit:      aggregate.Unit(),
		Quantity:  aggregate.Quantity(),
	}
}

func toDomain(dto MaterialDTO) (*material.Material, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return material.RestoreMaterial(id, dto.Name, dto.Warehouse, dto.Location, dto.Unit, dto.Quantity)
}
