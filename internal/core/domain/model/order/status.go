package order

import (
	"errors"
	"fmt"

	"factoryops/internal/pkg/errs"
)

// Lifecycle errors returned by status transitions. Handlers map them to the
// boundary's response shapes, so they are sentinels rather than ad-hoc values.
var (
	// ErrAlreadyCompleted is returned when an operation targets an order
	// that has already reached the Completed state.
	ErrAlreadyCompleted = errors.New("order is already completed")

	// ErrAlreadyAssigned is returned when an accept is attempted on an order
	// that already has an assigned employee. Double-accept is rejected, not
	// treated as idempotent success.
	ErrAlreadyAssigned = errors.New("order is already assigned to an employee")

	// ErrNotYetAccepted is returned when a finish is attempted on an order
	// that has not been accepted by an employee.
	ErrNotYetAccepted = errors.New("order is not yet accepted")
)

// Status represents the lifecycle state of a production order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	NotStarted ──> Accepted ──> Completed
//
// No transition moves backward: an accepted order cannot be un-accepted and
// Completed is a final state. Deletion is not a status; it removes the order
// row entirely.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NotStarted is the initial status when an order is first created.
	// Orders in this status have no assigned employee and no reserved stock.
	NotStarted

	// Accepted indicates an employee has taken the order and its material
	// requirements have been reserved from stock.
	Accepted

	// Completed indicates the order has been produced.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		NotStarted: "NotStarted",
		Accepted:   "Accepted",
		Completed:  "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotStarted: "NotStarted",
		Accepted:   "Accepted",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: NotStarted, Accepted, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - NotStarted -> Accepted
//
// Invalid transitions:
//   - Completed -> Accepted (ErrAlreadyCompleted)
//   - Accepted -> Accepted (ErrAlreadyAssigned; no reassignment)
//   - Unknown -> Accepted (invalid initial state)
func (s Status) Accept() (Status, error) {
	switch s {
	case NotStarted:
		return Accepted, nil
	case Accepted:
		return 0, ErrAlreadyAssigned
	case Completed:
		return 0, ErrAlreadyCompleted
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept from", s.String()),
		)
	}
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Accepted -> Completed
//
// Invalid transitions:
//   - NotStarted -> Completed (ErrNotYetAccepted; must be accepted first)
//   - Completed -> Completed (ErrAlreadyCompleted)
//   - Unknown -> Completed (invalid initial state)
func (s Status) Complete() (Status, error) {
	switch s {
	case Accepted:
		return Completed, nil
	case NotStarted:
		return 0, ErrNotYetAccepted
	case Completed:
		return 0, ErrAlreadyCompleted
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete from", s.String()),
		)
	}
}

// ValidateCanHaveEmployee validates the consistency between order status and
// employee assignment.
//
// Business Rules:
//   - NotStarted orders must not have an employee assigned
//   - Accepted and Completed orders must have an employee assigned
func (s Status) ValidateCanHaveEmployee(employee bool) error {
	if employee && s == NotStarted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an employee", s.String()),
		)
	}

	if !employee && (s == Accepted || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no employee", s.String()),
		)
	}

	return nil
}
