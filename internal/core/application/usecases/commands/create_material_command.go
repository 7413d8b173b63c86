package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrCreateMaterialCommandIsNotConstructed = errors.New(
	"CreateMaterialCommand must be created via NewCreateMaterialCommand constructor",
)

// CreateMaterialCommand represents a request to register a warehouse material
// with its initial stock level. Location and unit are optional descriptors.
type CreateMaterialCommand struct { //nolint:recvcheck //using for validation
	materialID kernel.UUID
	name       string
	warehouse  string
	location   string
	unit       string
	quantity   int

	guard guard.ConstructorGuard
}

// NewCreateMaterialCommand creates a command to register a material.
// Field validation beyond the ID is delegated to the material aggregate.
func NewCreateMaterialCommand(
	materialID kernel.UUID,
	name string,
	warehouse string,
	location string,
	unit string,
	quantity int,
) (CreateMaterialCommand, error) {
	materialCommand := CreateMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := materialCommand.setMaterialID(materialID); err != nil {
		return CreateMaterialCommand{}, err
	}

	materialCommand.name = name
	materialCommand.warehouse = warehouse
	materialCommand.location = location
	materialCommand.unit = unit
	materialCommand.quantity = quantity

	return materialCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrCreateMaterialCommandIsNotConstructed)
}

// MaterialID returns the unique identifier for the new material.
func (c CreateMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

// Name returns the material name.
func (c CreateMaterialCommand) Name() string {
	return c.name
}

// Warehouse returns the warehouse holding the material.
func (c CreateMaterialCommand) Warehouse() string {
	return c.warehouse
}

// Location returns the storage location within the warehouse.
func (c CreateMaterialCommand) Location() string {
	return c.location
}

// Unit returns the unit of measure.
func (c CreateMaterialCommand) Unit() string {
	return c.unit
}

// Quantity returns the initial stock level.
func (c CreateMaterialCommand) Quantity() int {
	return c.quantity
}

func (c *CreateMaterialCommand) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}

	c.materialID = materialID
	return nil
}
