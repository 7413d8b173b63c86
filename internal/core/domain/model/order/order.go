package order

import (
	"errors"
	"fmt"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNotAssignedEmployee is returned when an actor tries to finish an order
	// that is assigned to a different employee.
	ErrNotAssignedEmployee = errors.New("order is assigned to a different employee")
)

// Order represents a production order in the system. It is the aggregate root
// that manages the order lifecycle from creation through acceptance to
// completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty product name
//   - Requested quantity must be positive (greater than 0)
//   - The requirement list is frozen once the order leaves NotStarted
//   - Status transitions follow the rules defined by Status
//   - An employee is attached exactly when the order is Accepted or Completed
//   - Can only be created through NewOrder or restored through RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// employeeID is the assigned employee's ID (nil if unassigned)
	employeeID *kernel.UUID

	// productName names what is being produced
	productName string

	// quantity is the requested number of units to produce (must be positive)
	quantity int

	// requirements lists the materials consumed per produced unit
	requirements []Requirement

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder/RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// The order is created in NotStarted status with no assigned employee and no
// stock reserved: reservation is deferred to acceptance.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - productName: Name of the product to produce (must be non-empty)
//   - quantity: Requested production quantity (must be positive)
//   - requirements: Materials consumed per produced unit (may be empty,
//     each must be constructed via NewRequirement)
func NewOrder(id kernel.UUID, productName string, quantity int, requirements []Requirement) (*Order, error) {
	order := &Order{
		status:        NotStarted,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setProductName(productName),
		order.setQuantity(quantity),
		order.setRequirements(requirements),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status and an optional assigned employee, and verifies
// the status/employee consistency rule before returning the aggregate.
func RestoreOrder(
	id kernel.UUID,
	productName string,
	quantity int,
	status Status,
	employeeID *kernel.UUID,
	requirements []Requirement,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setProductName(productName),
		order.setQuantity(quantity),
		order.setRequirements(requirements),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if employeeID != nil {
		if err := employeeID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := status.ValidateCanHaveEmployee(employeeID != nil); err != nil {
		return nil, err
	}
	order.employeeID = employeeID

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductName returns the name of the product being produced.
func (o *Order) ProductName() string {
	return o.productName
}

// Quantity returns the requested production quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Employee returns the assigned employee's ID.
// Returns nil if no employee is assigned.
func (o *Order) Employee() *kernel.UUID {
	return o.employeeID
}

// Requirements returns a copy of the order's material requirements.
// Callers cannot mutate the aggregate's frozen list through the result.
func (o *Order) Requirements() []Requirement {
	out := make([]Requirement, len(o.requirements))
	copy(out, o.requirements)
	return out
}

// Accept assigns the order to an employee and transitions it to Accepted.
//
// Business rules:
//   - The employee ID must be valid
//   - The order must be NotStarted: a Completed order fails with
//     ErrAlreadyCompleted, an already accepted order fails with
//     ErrAlreadyAssigned (double-accept is rejected, never silent)
//
// Stock reservation is the caller's responsibility: the accept command
// reserves every requirement's total in the same transaction that persists
// this transition.
func (o *Order) Accept(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.employeeID = &employeeID
	return nil
}

// Complete marks the order as produced.
//
// Business rules:
//   - The order must be Accepted (ErrNotYetAccepted / ErrAlreadyCompleted)
//   - Only the assigned employee may finish the order; any other actor fails
//     with ErrNotAssignedEmployee
//
// No stock movement happens on completion: materials are consumed at
// acceptance.
func (o *Order) Complete(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	if o.employeeID == nil || !o.employeeID.IsEqual(actorID) {
		return ErrNotAssignedEmployee
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setProductName validates and sets the product name.
func (o *Order) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	o.productName = productName
	return nil
}

// setQuantity validates and sets the requested production quantity.
// Quantity must be positive (greater than 0).
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

// setRequirements validates and copies the requirement list.
func (o *Order) setRequirements(requirements []Requirement) error {
	for _, r := range requirements {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	o.requirements = make([]Requirement, len(requirements))
	copy(o.requirements, requirements)
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
