// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It handles the conversion between the order aggregate,
// including its requirement lines, and the relational representation.
package orderrepo

import (
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The employee reference is indexed for the one-active-order-per-employee
// lookup; requirement lines live in their own table and cascade on delete.
type OrderDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID   *uuid.UUID       `gorm:"type:uuid;index"`
	ProductName  string           `gorm:"type:varchar(255);not null"`
	Quantity     int              `gorm:"type:int;not null"`
	Status       int              `gorm:"type:int;not null;index"`
	Requirements []RequirementDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// RequirementDTO represents one material requirement line of an order.
// Lines are immutable after order creation.
type RequirementDTO struct {
	OrderID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaterialID      uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	PerUnitQuantity int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for requirement lines.
func (RequirementDTO) TableName() string {
	return "order_requirements"
}

// fromDomain converts an order domain aggregate to its database
// representation, including its requirement lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var employeeID *uuid.UUID
	if id := aggregate.Employee(); id != nil {
		raw := id.Bytes()
		employeeID = &raw
	}

	requirements := aggregate.Requirements()
	requirementDTOs := make([]RequirementDTO, 0, len(requirements))
	for _, req := range requirements {
		requirementDTOs = append(requirementDTOs, RequirementDTO{
			OrderID:         aggregate.ID().Bytes(),
			MaterialID:      req.MaterialID().Bytes(),
			PerUnitQuantity: req.PerUnitQuantity(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		EmployeeID:   employeeID,
		ProductName:  aggregate.ProductName(),
		Quantity:     aggregate.Quantity(),
		Status:       int(aggregate.Status()),
		Requirements: requirementDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-validates status and assignment consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var employeeID *kernel.UUID
	if dto.EmployeeID != nil {
		empID, empErr := kernel.UUIDFromBytes((*dto.EmployeeID)[:])
		if empErr != nil {
			return nil, empErr
		}
		employeeID = &empID
	}

	requirements := make([]order.Requirement, 0, len(dto.Requirements))
	for _, reqDTO := range dto.Requirements {
		materialID, reqErr := kernel.UUIDFromBytes(reqDTO.MaterialID[:])
		if reqErr != nil {
			return nil, reqErr
		}

		requirement, reqErr := order.NewRequirement(materialID, reqDTO.PerUnitQuantity)
		if reqErr != nil {
			return nil, reqErr
		}
		requirements = append(requirements, requirement)
	}

	return order.RestoreOrder(
		id,
		dto.ProductName,
		dto.Quantity,
		order.Status(dto.Status),
		employeeID,
		requirements,
	)
}
