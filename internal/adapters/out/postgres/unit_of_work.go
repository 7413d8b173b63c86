// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one database transaction; the repositories it
// hands out are bound to that transaction, so a command's reads, stock
// mutations and lifecycle transitions commit or roll back together.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets a fresh instance; instances are not safe for
// concurrent use. Commit errors caused by serialization failures surface as
// concurrency conflicts, which command handlers retry.
package postgres

import (
	"context"

	"factoryops/internal/adapters/out/postgres/conflict"
	"factoryops/internal/adapters/out/postgres/employeerepo"
	"factoryops/internal/adapters/out/postgres/materialrepo"
	"factoryops/internal/adapters/out/postgres/orderrepo"
	"factoryops/internal/adapters/out/postgres/shiftrepo"
	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for post-commit processing such as publishing domain events.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection pool. Each business operation gets its own instance with
// isolated transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided connection is shared by all created instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the order,
// material, employee and shift repositories. Repositories obtained from it
// run inside the active transaction; before Begin or after Commit/Rollback
// they fall back to the main connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an active instance is a no-op, not a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// A commit aborted by a serialization failure is reported as a concurrency
// conflict so the caller can retry the whole operation.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return conflict.Translate("commit", err)
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active, which
// makes the deferred rollback after a successful commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence operations bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// MaterialRepository provides material persistence operations bound to the
// current transaction.
func (uow *GormUnitOfWork) MaterialRepository() ports.MaterialRepository {
	return materialrepo.NewGormMaterialRepository(uow.conn(), uow)
}

// EmployeeRepository provides employee persistence operations bound to the
// current transaction.
func (uow *GormUnitOfWork) EmployeeRepository() ports.EmployeeRepository {
	return employeerepo.NewGormEmployeeRepository(uow.conn(), uow)
}

// ShiftRepository provides shift persistence operations bound to the current
// transaction.
func (uow *GormUnitOfWork) ShiftRepository() ports.ShiftRepository {
	return shiftrepo.NewGormShiftRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
