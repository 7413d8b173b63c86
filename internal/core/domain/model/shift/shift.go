// Package shift provides the Shift aggregate: an employee's open-ended work
// period. A shift is active while its end time is nil; at most one active
// shift per employee may exist, enforced by the start-shift command's query
// inside the transaction.
package shift

import (
	"errors"
	"time"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/errs"
)

var (
	// ErrShiftIsNotConstructed is returned when a Shift instance was not
	// created through the NewShift factory method.
	ErrShiftIsNotConstructed = errors.New("Shift must be created via NewShift constructor")

	// ErrAlreadyEnded is returned when ending a shift that already has an
	// end time recorded.
	ErrAlreadyEnded = errors.New("shift is already ended")
)

// Shift represents a work period of one employee.
type Shift struct {
	id         kernel.UUID
	employeeID kernel.UUID
	startTime  time.Time
	endTime    *time.Time

	isConstructed bool
}

// NewShift creates a validated active Shift starting at the given time.
func NewShift(id, employeeID kernel.UUID, startTime time.Time) (*Shift, error) {
	s := &Shift{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setEmployeeID(employeeID),
		s.setStartTime(startTime),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShift reconstructs a Shift from persistence, possibly already ended.
func RestoreShift(id, employeeID kernel.UUID, startTime time.Time, endTime *time.Time) (*Shift, error) {
	s, err := NewShift(id, employeeID, startTime)
	if err != nil {
		return nil, err
	}

	if endTime != nil {
		if endTime.Before(startTime) {
			return nil, errs.NewValueIsInvalidError("endTime is before startTime")
		}
		t := *endTime
		s.endTime = &t
	}

	return s, nil
}

// Validate ensures the Shift instance was properly constructed.
func (s *Shift) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShiftIsNotConstructed
	}
	return nil
}

// ID returns the shift's unique identifier.
func (s *Shift) ID() kernel.UUID {
	return s.id
}

// EmployeeID returns the identifier of the employee working this shift.
func (s *Shift) EmployeeID() kernel.UUID {
	return s.employeeID
}

// StartTime returns when the shift started.
func (s *Shift) StartTime() time.Time {
	return s.startTime
}

// EndTime returns when the shift ended, or nil while it is active.
func (s *Shift) EndTime() *time.Time {
	if s.endTime == nil {
		return nil
	}
	t := *s.endTime
	return &t
}

// IsActive reports whether the shift has no recorded end time.
func (s *Shift) IsActive() bool {
	return s.endTime == nil
}

// End records the shift's end time. An already-ended shift fails with
// ErrAlreadyEnded. The end time is clamped to the start time so a skewed
// clock can never produce a negative duration.
func (s *Shift) End(at time.Time) error {
	if s.endTime != nil {
		return ErrAlreadyEnded
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("endTime")
	}

	if at.Before(s.startTime) {
		at = s.startTime
	}
	s.endTime = &at
	return nil
}

// Duration returns the worked time of an ended shift, or the zero duration
// while the shift is active.
func (s *Shift) Duration() time.Duration {
	if s.endTime == nil {
		return 0
	}
	return s.endTime.Sub(s.startTime)
}

func (s *Shift) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shift) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	s.employeeID = employeeID
	return nil
}

func (s *Shift) setStartTime(startTime time.Time) error {
	if startTime.IsZero() {
		return errs.NewValueIsRequiredError("startTime")
	}
	s.startTime = startTime
	return nil
}
