package commands

import (
	"context"

	"factoryops/internal/core/domain/model/material"
)

// CreateMaterialCommandHandler handles the business logic for registering a
// warehouse material. The material aggregate validates name, warehouse and
// the non-negative initial quantity.
type CreateMaterialCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewCreateMaterialCommandHandler creates a handler for material registration.
// Requires a StockUoWFactory for transactional persistence.
func NewCreateMaterialCommandHandler(uowFactory StockUoWFactory) CreateMaterialCommandHandler {
	return CreateMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the material registration command.
func (h *CreateMaterialCommandHandler) Handle(ctx context.Context, cmd CreateMaterialCommand) error {
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

	newMaterial, err := material.NewMaterial(
		cmd.MaterialID(),
		cmd.Name(),
		cmd.Warehouse(),
		cmd.Location(),
		cmd.Unit(),
		cmd.Quantity(),
	)
	if err != nil {
		return err
	}

	if err = uow.MaterialRepository().Add(ctx, newMaterial); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
