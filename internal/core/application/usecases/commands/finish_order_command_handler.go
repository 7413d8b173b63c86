package commands

import (
	"context"
)

// FinishOrderCommandHandler handles the business logic for order completion.
// Loads the order under a write lock, transitions it to Completed and
// persists the change. The domain aggregate enforces that only the assigned
// employee may finish and that the order is currently Accepted.
//
// Example:
//
//	handler := NewFinishOrderCommandHandler(uowFactory)
//	cmd, _ := NewFinishOrderCommand(orderID, employeeID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to finish order: %w", err)
//	}
type FinishOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinishOrderCommandHandler creates a handler for order completion.
// Requires an OrderUoWFactory for transactional persistence.
func NewFinishOrderCommandHandler(uowFactory OrderUoWFactory) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order completion command.
// Returns order.ErrNotAssignedEmployee when someone other than the assigned
// employee attempts completion, order.ErrNotYetAccepted for orders still in
// "not_started", and order.ErrAlreadyCompleted for repeated completion.
func (h *FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h *FinishOrderCommandHandler) handle(ctx context.Context, cmd FinishOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	finishedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = finishedOrder.Complete(cmd.EmployeeID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, finishedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
