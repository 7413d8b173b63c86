package commands

import (
	"errors"
	"time"

	"factoryops/internal/pkg/errs"
	"factoryops/internal/pkg/guard"
)

var ErrCloseStaleShiftsCommandIsNotConstructed = errors.New(
	"CloseStaleShiftsCommand must be created via NewCloseStaleShiftsCommand constructor",
)

// CloseStaleShiftsCommand represents a maintenance request to force-close
// shifts that have been open longer than the allowed maximum. Issued
// periodically by the background job for employees who forgot to clock out.
type CloseStaleShiftsCommand struct { //nolint:recvcheck //using for validation
	maxDuration time.Duration

	guard guard.ConstructorGuard
}

// NewCloseStaleShiftsCommand creates a command to close overdue shifts.
// Validates that the maximum duration is positive.
func NewCloseStaleShiftsCommand(maxDuration time.Duration) (CloseStaleShiftsCommand, error) {
	staleCommand := CloseStaleShiftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setMaxDuration(maxDuration); err != nil {
		return CloseStaleShiftsCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseStaleShiftsCommand) Validate() error {
	return c.guard.Validate(ErrCloseStaleShiftsCommandIsNotConstructed)
}

// MaxDuration returns the longest a shift may stay open before it is
// force-closed.
func (c CloseStaleShiftsCommand) MaxDuration() time.Duration {
	return c.maxDuration
}

func (c *CloseStaleShiftsCommand) setMaxDuration(maxDuration time.Duration) error {
	if maxDuration <= 0 {
		return errs.NewValueIsRequiredError("maxDuration")
	}

	c.maxDuration = maxDuration
	return nil
}
