package commands

import (
	"context"
	"sort"

	"factoryops/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler handles the business logic for order removal.
// For an accepted order the reserved stock is released back to the warehouse
// within the same transaction; material rows are locked in ascending ID
// order, mirroring the acceptance path.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order removal command.
// Returns an ObjectNotFoundError when the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h *DeleteOrderCommandHandler) handle(ctx context.Context, cmd DeleteOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deletedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if deletedOrder.Status() == order.Accepted {
		if err = h.releaseStock(ctx, uow, deletedOrder); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, deletedOrder.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseStock locks and increments every material the order had reserved.
// Rows are locked in ascending material ID order.
func (h *DeleteOrderCommandHandler) releaseStock(ctx context.Context, uow OrderUoW, deletedOrder *order.Order) error {
	requirements := deletedOrder.Requirements()
	sort.Slice(requirements, func(i, j int) bool {
		return requirements[i].MaterialID().String() < requirements[j].MaterialID().String()
	})

	materialRepo := uow.MaterialRepository()
	for _, req := range requirements {
		lockedMaterial, err := materialRepo.GetForUpdate(ctx, req.MaterialID())
		if err != nil {
			return err
		}

		if err = lockedMaterial.Release(req.TotalFor(deletedOrder.Quantity())); err != nil {
			return err
		}

		if err = materialRepo.Update(ctx, lockedMaterial); err != nil {
			return err
		}
	}

	return nil
}
