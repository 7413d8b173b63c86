package commands

import (
	"context"
	"errors"
)

// ErrMaterialInUse indicates a material cannot be removed because an
// unfinished order still requires it.
var ErrMaterialInUse = errors.New("material is required by an unfinished order")

// DeleteMaterialCommandHandler handles the business logic for material
// removal. A material referenced by any "not_started" or "accepted" order is
// protected from deletion; references from completed orders do not block.
type DeleteMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewDeleteMaterialCommandHandler creates a handler for material removal.
// Requires a MaterialUoWFactory for transactional persistence.
func NewDeleteMaterialCommandHandler(uowFactory MaterialUoWFactory) DeleteMaterialCommandHandler {
	return DeleteMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the material removal command.
// Returns ErrMaterialInUse when an unfinished order references the material
// and an ObjectNotFoundError when the material does not exist.
func (h *DeleteMaterialCommandHandler) Handle(ctx context.Context, cmd DeleteMaterialCommand) error {
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
	deletedMaterial, err := materialRepo.GetForUpdate(ctx, cmd.MaterialID())
	if err != nil {
		return err
	}

	inUse, err := uow.OrderRepository().ExistsNonTerminalWithMaterial(ctx, deletedMaterial.ID())
	if err != nil {
		return err
	}
	if inUse {
		return ErrMaterialInUse
	}

	if err = materialRepo.Delete(ctx, deletedMaterial.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
