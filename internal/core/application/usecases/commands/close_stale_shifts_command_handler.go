package commands

import (
	"context"

	"factoryops/internal/core/ports"
)

// CloseStaleShiftsCommandHandler force-closes shifts left open past the
// configured maximum. Each stale shift is stamped with the current time, not
// the cutoff, so the recorded duration reflects when the system noticed.
type CloseStaleShiftsCommandHandler struct {
	uowFactory ShiftUoWFactory
	clock      ports.Clock
}

// NewCloseStaleShiftsCommandHandler creates a handler for the stale-shift
// sweep. Requires a ShiftUoWFactory for transactional persistence and a Clock
// as the time source.
func NewCloseStaleShiftsCommandHandler(uowFactory ShiftUoWFactory, clock ports.Clock) CloseStaleShiftsCommandHandler {
	return CloseStaleShiftsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle closes every active shift that started before now minus the
// command's maximum duration. All closures commit in one transaction.
func (h *CloseStaleShiftsCommandHandler) Handle(ctx context.Context, cmd CloseStaleShiftsCommand) error {
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

	now := h.clock.Now().UTC()
	cutoff := now.Add(-cmd.MaxDuration())

	shiftRepo := uow.ShiftRepository()
	staleShifts, err := shiftRepo.GetActiveStartedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, staleShift := range staleShifts {
		if err = staleShift.End(now); err != nil {
			return err
		}

		if err = shiftRepo.Update(ctx, staleShift); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
