package order

import (
	"errors"
	"fmt"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/errs"
)

// ErrRequirementIsNotConstructed is returned when a Requirement was not created
// through the NewRequirement factory method.
var ErrRequirementIsNotConstructed = errors.New("Requirement must be created via NewRequirement constructor")

// Requirement is a value object describing how much of a material the order
// consumes per produced unit. The list of requirements is frozen once the
// order leaves NotStarted: reservations are computed from it on accept and
// released from it on deletion, so it must never change in between.
type Requirement struct {
	materialID      kernel.UUID
	perUnitQuantity int

	isConstructed bool
}

// NewRequirement creates a validated Requirement.
// The material ID must be valid and the per-unit quantity positive.
func NewRequirement(materialID kernel.UUID, perUnitQuantity int) (Requirement, error) {
	if err := materialID.Validate(); err != nil {
		return Requirement{}, err
	}
	if perUnitQuantity <= 0 {
		return Requirement{}, errs.NewValueIsInvalidErrorWithCause(
			"perUnitQuantity is invalid",
			fmt.Errorf("%d is not greater than 0", perUnitQuantity),
		)
	}

	return Requirement{
		materialID:      materialID,
		perUnitQuantity: perUnitQuantity,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Requirement was created via NewRequirement.
func (r Requirement) Validate() error {
	if !r.isConstructed {
		return ErrRequirementIsNotConstructed
	}
	return nil
}

// MaterialID returns the referenced material's identifier.
func (r Requirement) MaterialID() kernel.UUID {
	return r.materialID
}

// PerUnitQuantity returns the material quantity consumed per produced unit.
func (r Requirement) PerUnitQuantity() int {
	return r.perUnitQuantity
}

// TotalFor computes the total stock required for the given production
// quantity.
func (r Requirement) TotalFor(orderQuantity int) int {
	return r.perUnitQuantity * orderQuantity
}
