package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrDeleteMaterialCommandIsNotConstructed = errors.New(
	"DeleteMaterialCommand must be created via NewDeleteMaterialCommand constructor",
)

// DeleteMaterialCommand represents a request to remove a material from the
// catalog. Rejected while any unfinished order still requires the material.
type DeleteMaterialCommand struct { //nolint:recvcheck //using for validation
	materialID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMaterialCommand creates a command to remove a material.
// Validates that the material ID is a valid UUID.
func NewDeleteMaterialCommand(materialID kernel.UUID) (DeleteMaterialCommand, error) {
	deleteCommand := DeleteMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setMaterialID(materialID); err != nil {
		return DeleteMaterialCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMaterialCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMaterialCommandIsNotConstructed)
}

// MaterialID returns the identifier of the material to remove.
func (c DeleteMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

func (c *DeleteMaterialCommand) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}

	c.materialID = materialID
	return nil
}
