package commands_test

import (
	"context"
	"time"

	"factoryops/internal/core/application/usecases/commands"
	"factoryops/internal/core/domain/model/employee"
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/material"
	"factoryops/internal/core/domain/model/order"
	"factoryops/internal/core/domain/model/shift"
	"factoryops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAcceptedByEmployee(ctx context.Context, employeeID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsNonTerminalWithMaterial(ctx context.Context, materialID kernel.UUID) (bool, error) {
	args := m.Called(ctx, materialID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ExistsNonTerminalWithEmployee(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

type MockMaterialRepository struct{ mock.Mock }

func (m *MockMaterialRepository) Add(ctx context.Context, mat *material.Material) error {
	args := m.Called(ctx, mat)
	return args.Error(0)
}

func (m *MockMaterialRepository) Update(ctx context.Context, mat *material.Material) error {
	args := m.Called(ctx, mat)
	return args.Error(0)
}

func (m *MockMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.Material), args.Error(1)
}

func (m *MockMaterialRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e *employee.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShiftRepository struct{ mock.Mock }

func (m *MockShiftRepository) Add(ctx context.Context, s *shift.Shift) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShiftRepository) Update(ctx context.Context, s *shift.Shift) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShiftRepository) Get(ctx context.Context, id kernel.UUID) (*shift.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) GetActiveByEmployee(ctx context.Context, employeeID kernel.UUID) (*shift.Shift, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) GetActiveStartedBefore(ctx context.Context, cutoff time.Time) ([]*shift.Shift, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shift.Shift), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}

func (m *MockOrderUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStockUoW struct{ mock.Mock }

func (m *MockStockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStockUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockMaterialUoW struct{ mock.Mock }

func (m *MockMaterialUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMaterialUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMaterialUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMaterialUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}

func (m *MockMaterialUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockMaterialUoWFactory struct{ mock.Mock }

func (m *MockMaterialUoWFactory) Create() commands.MaterialUoW {
	args := m.Called()
	return args.Get(0).(commands.MaterialUoW)
}

type MockEmployeeUoW struct{ mock.Mock }

func (m *MockEmployeeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEmployeeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEmployeeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEmployeeUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

func (m *MockEmployeeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockEmployeeUoWFactory struct{ mock.Mock }

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	args := m.Called()
	return args.Get(0).(commands.EmployeeUoW)
}

type MockShiftUoW struct{ mock.Mock }

func (m *MockShiftUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShiftUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShiftUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShiftUoW) ShiftRepository() ports.ShiftRepository {
	args := m.Called()
	return args.Get(0).(ports.ShiftRepository)
}

func (m *MockShiftUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

type MockShiftUoWFactory struct{ mock.Mock }

func (m *MockShiftUoWFactory) Create() commands.ShiftUoW {
	args := m.Called()
	return args.Get(0).(commands.ShiftUoW)
}

// fixedClock returns the same instant on every call.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
