package ports

import "time"

// Clock supplies the current time to commands that record timestamps.
// Injecting it keeps shift handling deterministic in tests.
type Clock interface {
	Now() time.Time
}
