package commands

import (
	"context"
	"errors"
)

// ErrEmployeeHasActiveOrder indicates an employee cannot be removed while
// attached to an unfinished order.
var ErrEmployeeHasActiveOrder = errors.New("employee is assigned to an unfinished order")

// DeleteEmployeeCommandHandler handles the business logic for employee
// removal. An employee holding a "not_started" or "accepted" order is
// protected from deletion; completed orders keep their employee reference
// for history and do not block.
type DeleteEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewDeleteEmployeeCommandHandler creates a handler for employee removal.
// Requires an EmployeeUoWFactory for transactional persistence.
func NewDeleteEmployeeCommandHandler(uowFactory EmployeeUoWFactory) DeleteEmployeeCommandHandler {
	return DeleteEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the employee removal command.
// Returns ErrEmployeeHasActiveOrder when the employee holds an unfinished
// order and an ObjectNotFoundError when the employee does not exist.
func (h *DeleteEmployeeCommandHandler) Handle(ctx context.Context, cmd DeleteEmployeeCommand) error {
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

	employeeRepo := uow.EmployeeRepository()
	deletedEmployee, err := employeeRepo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	busy, err := uow.OrderRepository().ExistsNonTerminalWithEmployee(ctx, deletedEmployee.ID())
	if err != nil {
		return err
	}
	if busy {
		return ErrEmployeeHasActiveOrder
	}

	if err = employeeRepo.Delete(ctx, deletedEmployee.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
