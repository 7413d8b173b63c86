package material

import (
	"errors"
	"fmt"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/errs"
)

var (
	// ErrMaterialIsNotConstructed is returned when a Material instance was not
	// created through the NewMaterial factory method.
	ErrMaterialIsNotConstructed = errors.New("Material must be created via NewMaterial constructor")

	// ErrInsufficientStock is the sentinel behind InsufficientStockError,
	// usable with errors.Is.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a failed reservation: the requested quantity
// exceeded the material's available stock. It carries everything the boundary
// needs to explain the failure without another read.
type InsufficientStockError struct {
	MaterialID   kernel.UUID
	MaterialName string
	Requested    int
	Available    int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// material and quantities.
func NewInsufficientStockError(id kernel.UUID, name string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		MaterialID:   id,
		MaterialName: name,
		Requested:    requested,
		Available:    available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s, requested %d, available %d",
		ErrInsufficientStock, e.MaterialName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Material represents a raw material held in stock. It is the aggregate root
// for the stock ledger: the available quantity is mutated only through Reserve
// and Release, which preserve the non-negativity invariant.
//
// Material follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Available quantity is never negative, under any call sequence
//   - Can only be created through NewMaterial or restored through RestoreMaterial
//
// Serialization of concurrent reservations against the same material is the
// storage layer's job: repositories load the row with a write-intent lock, so
// the check-and-decrement in Reserve is atomic per transaction.
type Material struct {
	// id is the unique identifier for the material
	id kernel.UUID

	// name is the display name of the material
	name string

	// warehouse names the warehouse holding the stock
	warehouse string

	// location is the storage location within the warehouse (may be empty)
	location string

	// unit is the unit of measure (may be empty)
	unit string

	// quantity is the available stock (never negative)
	quantity int

	// isConstructed ensures the material was created via a constructor
	isConstructed bool
}

// NewMaterial creates a new Material instance with validation.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Display name (must be non-empty)
//   - warehouse: Warehouse holding the stock (must be non-empty)
//   - location: Storage location within the warehouse (optional)
//   - unit: Unit of measure (optional)
//   - quantity: Initial available stock (must be non-negative)
func NewMaterial(id kernel.UUID, name, warehouse, location, unit string, quantity int) (*Material, error) {
	m := &Material{
		location:      location,
		unit:          unit,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setWarehouse(warehouse),
		m.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMaterial reconstructs a Material from persistence.
func RestoreMaterial(id kernel.UUID, name, warehouse, location, unit string, quantity int) (*Material, error) {
	return NewMaterial(id, name, warehouse, location, unit, quantity)
}

// Validate ensures the Material instance was properly constructed.
func (m *Material) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMaterialIsNotConstructed
	}
	return nil
}

// IsEqual compares two materials by their unique identifiers.
func (m *Material) IsEqual(other *Material) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the material's unique identifier.
func (m *Material) ID() kernel.UUID {
	return m.id
}

// Name returns the material's display name.
func (m *Material) Name() string {
	return m.name
}

// Warehouse returns the warehouse holding the stock.
func (m *Material) Warehouse() string {
	return m.warehouse
}

// Location returns the storage location within the warehouse.
func (m *Material) Location() string {
	return m.location
}

// Unit returns the unit of measure.
func (m *Material) Unit() string {
	return m.unit
}

// Quantity returns the available stock.
func (m *Material) Quantity() int {
	return m.quantity
}

// Reserve performs the atomic check-and-decrement of available stock.
//
// It fails with InsufficientStockError when the requested quantity exceeds the
// available stock, leaving the quantity unchanged. The quantity must be
// positive. No caller can observe a negative quantity: the check and the
// decrement happen on the same in-transaction aggregate state.
func (m *Material) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if m.quantity < quantity {
		return NewInsufficientStockError(m.id, m.name, quantity, m.quantity)
	}

	m.quantity -= quantity
	return nil
}

// Release returns previously reserved stock to the material.
//
// The increment is unconditional: a cancellation always returns exactly what
// it reserved. The quantity must be positive.
func (m *Material) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	m.quantity += quantity
	return nil
}

// setID validates and sets the material's unique identifier.
func (m *Material) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

// setName validates and sets the display name.
func (m *Material) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

// setWarehouse validates and sets the warehouse name.
func (m *Material) setWarehouse(warehouse string) error {
	if warehouse == "" {
		return errs.NewValueIsRequiredError("warehouse")
	}
	m.warehouse = warehouse
	return nil
}

// setQuantity validates and sets the available stock.
// Quantity must be non-negative.
func (m *Material) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, maxQuantity)
	}
	m.quantity = quantity
	return nil
}

// maxQuantity bounds the reported range in out-of-range errors.
const maxQuantity = int(^uint(0) >> 1)
