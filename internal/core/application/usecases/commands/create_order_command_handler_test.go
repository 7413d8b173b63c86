package commands_test

import (
	"errors"
	"testing"

	"factoryops/internal/core/application/usecases/commands"
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/material"
	"factoryops/internal/core/domain/model/order"
	"factoryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMaterial(t *testing.T, id kernel.UUID, name string, quantity int) *material.Material {
	t.Helper()
	testMaterial, err := material.NewMaterial(id, name, "Main", "A-1", "pcs", quantity)
	require.NoError(t, err)
	return testMaterial
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	materialID := kernel.NewUUID()
	req, err := order.NewRequirement(materialID, 3)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Oak Table", 4, []order.Requirement{req})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	materialRepo := new(MockMaterialRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		materialRepo.On("Get", ctx, materialID).
			Return(createTestMaterial(t, materialID, "Oak Panel", 100), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	materialRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewCreateOrderCommand constructor")
}

func TestCreateOrderCommandHandler_Handle_UnknownMaterial(t *testing.T) {
	ctx := t.Context()
	materialID := kernel.NewUUID()
	req, err := order.NewRequirement(materialID, 2)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Oak Table", 1, []order.Requirement{req})
	require.NoError(t, err)

	materialRepo := new(MockMaterialRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		materialRepo.On("Get", ctx, materialID).
			Return(nil, errs.NewObjectNotFoundError("material", materialID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	materialRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Oak Table", 1, nil)
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin error")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
}
