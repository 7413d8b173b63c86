package commands

import (
	"context"

	"factoryops/internal/core/domain/model/employee"
)

// CreateEmployeeCommandHandler handles the business logic for registering an
// employee. The employee aggregate validates the required name and role.
type CreateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewCreateEmployeeCommandHandler creates a handler for employee registration.
// Requires an EmployeeUoWFactory for transactional persistence.
func NewCreateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the employee registration command.
func (h *CreateEmployeeCommandHandler) Handle(ctx context.Context, cmd CreateEmployeeCommand) error {
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

	newEmployee, err := employee.NewEmployee(
		cmd.EmployeeID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Role(),
		cmd.Status(),
	)
	if err != nil {
		return err
	}

	if err = uow.EmployeeRepository().Add(ctx, newEmployee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
