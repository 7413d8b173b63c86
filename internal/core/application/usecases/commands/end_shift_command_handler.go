package commands

import (
	"context"
	"errors"

	"factoryops/internal/core/ports"
)

// ErrNotShiftOwner indicates an employee tried to close a shift started by
// someone else.
var ErrNotShiftOwner = errors.New("shift belongs to another employee")

// EndShiftCommandHandler handles the business logic for closing a shift.
// Stamps the shift with the current time; the aggregate rejects closing an
// already-ended shift.
type EndShiftCommandHandler struct {
	uowFactory ShiftUoWFactory
	clock      ports.Clock
}

// NewEndShiftCommandHandler creates a handler for closing shifts.
// Requires a ShiftUoWFactory for transactional persistence and a Clock as the
// time source.
func NewEndShiftCommandHandler(uowFactory ShiftUoWFactory, clock ports.Clock) EndShiftCommandHandler {
	return EndShiftCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the shift closing command.
// Returns ErrNotShiftOwner when the actor did not start the shift and
// shift.ErrAlreadyEnded when the shift is already closed.
func (h *EndShiftCommandHandler) Handle(ctx context.Context, cmd EndShiftCommand) error {
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

	shiftRepo := uow.ShiftRepository()
	endedShift, err := shiftRepo.Get(ctx, cmd.ShiftID())
	if err != nil {
		return err
	}

	if !endedShift.EmployeeID().IsEqual(cmd.EmployeeID()) {
		return ErrNotShiftOwner
	}

	if err = endedShift.End(h.clock.Now().UTC()); err != nil {
		return err
	}

	if err = shiftRepo.Update(ctx, endedShift); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
