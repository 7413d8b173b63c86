package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrAdjustmentIsZero = errors.New("adjustment must not be 0")
)

// AdjustStockCommand represents a manual stock correction: a positive delta
// records replenishment, a negative delta records shrinkage or write-off.
// Reservation-driven stock movement never goes through this command.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	materialID kernel.UUID
	delta      int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to correct a material's stock.
// Validates that the material ID is valid and the delta is non-zero.
func NewAdjustStockCommand(materialID kernel.UUID, delta int) (AdjustStockCommand, error) {
	adjustCommand := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		adjustCommand.setMaterialID(materialID),
		adjustCommand.setDelta(delta),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return adjustCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// MaterialID returns the identifier of the material to adjust.
func (c AdjustStockCommand) MaterialID() kernel.UUID {
	return c.materialID
}

// Delta returns the signed stock correction.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

func (c *AdjustStockCommand) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}

	c.materialID = materialID
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrAdjustmentIsZero
	}

	c.delta = delta
	return nil
}
