// Package material provides the stock ledger side of the factory operations
// domain. The Material aggregate owns the available quantity of a raw
// material and exposes the two ledger operations: Reserve, an atomic
// check-and-decrement that fails with a typed InsufficientStockError, and
// Release, an unconditional increment used by cancellations and rollbacks.
//
// The non-negativity invariant is enforced here; atomicity across concurrent
// requests is enforced by loading the aggregate under a row-level write lock
// inside the storage transaction.
package material
