package commands

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/order"
	"factoryops/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a new production order.
// The order starts in NotStarted status with no assigned employee; material
// requirements are validated for existence but no stock is reserved —
// reservation is deferred to acceptance.
//
// Example:
//
//	req, _ := order.NewRequirement(materialID, 3)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Oak Table", 4, []order.Requirement{req})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	productName  string
	quantity     int
	requirements []order.Requirement

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new production order.
// Validates that the order ID is valid, the product name is not empty, the
// quantity is positive, and every requirement was properly constructed.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	productName string,
	quantity int,
	requirements []order.Requirement,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setProductName(productName),
		orderCommand.setQuantity(quantity),
		orderCommand.setRequirements(requirements),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductName returns the product to produce.
func (c CreateOrderCommand) ProductName() string {
	return c.productName
}

// Quantity returns the requested production quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Requirements returns the material requirements per produced unit.
func (c CreateOrderCommand) Requirements() []order.Requirement {
	return c.requirements
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}

	c.productName = productName
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setRequirements(requirements []order.Requirement) error {
	for _, r := range requirements {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	c.requirements = requirements
	return nil
}
