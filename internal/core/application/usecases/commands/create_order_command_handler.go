package commands

import (
	"context"

	"factoryops/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies every referenced material exists before persisting the order in
// "not_started" status. No stock moves here: reservation happens on acceptance.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Oak Table", 4, requirements)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now registered and ready for acceptance
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Fails with an ObjectNotFoundError when a requirement references an unknown
// material; nothing is persisted in that case.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	materialRepo := uow.MaterialRepository()
	for _, req := range cmd.Requirements() {
		if _, err := materialRepo.Get(ctx, req.MaterialID()); err != nil {
			return err
		}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.ProductName(), cmd.Quantity(), cmd.Requirements())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
