// Package conflict translates PostgreSQL concurrency failures into the
// application's concurrency conflict error so command handlers can retry
// aborted transactions without knowing driver error codes.
package conflict

import (
	"errors"

	"factoryops/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes raised when PostgreSQL aborts a transaction because of
// concurrent access: serialization_failure and deadlock_detected.
const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// Translate maps serialization failures and deadlocks to a
// ConcurrencyConflictError tagged with the failed operation. Any other error,
// including nil, passes through unchanged.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == serializationFailure || pgErr.Code == deadlockDetected {
			return errs.NewConcurrencyConflictError(operation, err)
		}
	}

	return err
}
