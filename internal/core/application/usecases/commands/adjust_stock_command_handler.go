package commands

import (
	"context"
)

// AdjustStockCommandHandler handles manual stock corrections. The material
// row is locked for the duration of the transaction so a correction cannot
// interleave with a concurrent reservation. A negative delta that exceeds the
// available stock fails with InsufficientStockError, keeping the quantity
// non-negative.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock corrections.
// Requires a StockUoWFactory for transactional persistence.
func NewAdjustStockCommandHandler(uowFactory StockUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock correction command.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h *AdjustStockCommandHandler) handle(ctx context.Context, cmd AdjustStockCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	materialRepo := uow.MaterialRepository()
	adjustedMaterial, err := materialRepo.GetForUpdate(ctx, cmd.MaterialID())
	if err != nil {
		return err
	}

	if cmd.Delta() > 0 {
		err = adjustedMaterial.Release(cmd.Delta())
	} else {
		err = adjustedMaterial.Reserve(-cmd.Delta())
	}
	if err != nil {
		return err
	}

	if err = materialRepo.Update(ctx, adjustedMaterial); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
