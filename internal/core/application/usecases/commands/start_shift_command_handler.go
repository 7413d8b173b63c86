package commands

import (
	"context"
	"errors"

	"factoryops/internal/core/domain/model/shift"
	"factoryops/internal/core/ports"
	"factoryops/internal/pkg/errs"
)

// ErrShiftAlreadyActive indicates the employee already has an open shift and
// must end it before starting another.
var ErrShiftAlreadyActive = errors.New("employee already has an active shift")

// StartShiftCommandHandler handles the business logic for opening a shift.
// Verifies the employee exists and has no open shift, then records a new
// shift starting at the current time. The employee row is locked for the
// duration of the transaction, so concurrent openings by the same employee
// serialize and at most one succeeds.
//
// Example:
//
//	handler := NewStartShiftCommandHandler(uowFactory, clock)
//	cmd, _ := NewStartShiftCommand(kernel.NewUUID(), employeeID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start shift: %w", err)
//	}
type StartShiftCommandHandler struct {
	uowFactory ShiftUoWFactory
	clock      ports.Clock
}

// NewStartShiftCommandHandler creates a handler for opening shifts.
// Requires a ShiftUoWFactory for transactional persistence and a Clock as the
// time source.
func NewStartShiftCommandHandler(uowFactory ShiftUoWFactory, clock ports.Clock) StartShiftCommandHandler {
	return StartShiftCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the shift opening command.
// Returns ErrShiftAlreadyActive when the employee has an unfinished shift and
// an ObjectNotFoundError when the employee does not exist.
func (h *StartShiftCommandHandler) Handle(ctx context.Context, cmd StartShiftCommand) error {
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

	// The employee row lock serializes concurrent shift openings for the
	// same employee, so the active-shift check below cannot race.
	if _, err := uow.EmployeeRepository().GetForUpdate(ctx, cmd.EmployeeID()); err != nil {
		return err
	}

	shiftRepo := uow.ShiftRepository()
	_, err := shiftRepo.GetActiveByEmployee(ctx, cmd.EmployeeID())
	if err == nil {
		return ErrShiftAlreadyActive
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newShift, err := shift.NewShift(cmd.ShiftID(), cmd.EmployeeID(), h.clock.Now().UTC())
	if err != nil {
		return err
	}

	if err = shiftRepo.Add(ctx, newShift); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
