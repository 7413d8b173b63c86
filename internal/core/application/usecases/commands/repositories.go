// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"factoryops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MaterialRepoFactory provides access to the material repository within a transaction.
	MaterialRepoFactory interface {
		MaterialRepository() ports.MaterialRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// ShiftRepoFactory provides access to the shift repository within a transaction.
	ShiftRepoFactory interface {
		ShiftRepository() ports.ShiftRepository
	}

	// OrderUoW manages transactions for the order lifecycle. Order commands
	// mutate the order and the implicated material rows atomically, and
	// acceptance must verify the acting employee, so the unit of work spans
	// all three repositories.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MaterialRepoFactory
		EmployeeRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StockUoW manages transactions for direct stock CRUD on materials.
	StockUoW interface {
		TxManager
		MaterialRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// MaterialUoW manages transactions for material removal, which must
	// consult orders to reject deleting a material still referenced by a
	// non-terminal order.
	MaterialUoW interface {
		TxManager
		MaterialRepoFactory
		OrderRepoFactory
	}

	// MaterialUoWFactory creates new material unit of work instances.
	MaterialUoWFactory interface {
		Create() MaterialUoW
	}

	// EmployeeUoW manages transactions for employee administration, which
	// must consult orders to reject deleting an employee holding a
	// non-terminal order.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
		OrderRepoFactory
	}

	// EmployeeUoWFactory creates new employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// ShiftUoW manages transactions for shift tracking. Starting a shift
	// verifies the employee exists, so the unit of work spans both
	// repositories.
	ShiftUoW interface {
		TxManager
		ShiftRepoFactory
		EmployeeRepoFactory
	}

	// ShiftUoWFactory creates new shift unit of work instances.
	ShiftUoWFactory interface {
		Create() ShiftUoW
	}
)
