package commands

import (
	"context"
	"errors"

	"factoryops/internal/pkg/errs"
)

// maxConflictAttempts bounds the internal retries of a command whose
// transaction was aborted by a storage-layer serialization failure or
// deadlock. After the last attempt the conflict error surfaces to the caller.
const maxConflictAttempts = 3

// retryOnConflict runs fn up to maxConflictAttempts times, retrying only when
// the returned error is a concurrency conflict. Business errors and other
// failures pass through on the first occurrence.
func retryOnConflict(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxConflictAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || !errors.Is(err, errs.ErrConcurrencyConflict) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
	}
	return err
}
